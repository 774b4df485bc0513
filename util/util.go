package util

import (
	"io"
	"math/rand"
	"os"
	"strings"
	"time"
)

var (
	random          = rand.New(rand.NewSource(time.Now().UnixNano()))
	charsetRandomID = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// RandomID generates a random lowercase string ID
func RandomID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charsetRandomID[random.Intn(len(charsetRandomID))]
	}
	return string(b)
}

// Contains returns true if the needle is contained in the haystack
func Contains[T comparable](haystack []T, needle T) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// FileExists returns true if a file with the given filename exists
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// ReadText returns the arguments joined by spaces, or the entire reader if there are no arguments.
// A single trailing newline is removed from the reader input.
func ReadText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
