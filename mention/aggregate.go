package mention

import (
	"heckel.io/mentionbot/entity"
	"sort"
)

// mentionKey identifies an entity across kinds. Channels and roles may share a snowflake, so the
// ID alone is not enough. Users and members share the KindUser key and collapse into one entry.
type mentionKey struct {
	kind Kind
	id   entity.ID
}

type mentionEntry struct {
	mentionable entity.Mentionable
	offset      int
}

// GetMentions returns all mentioned entities of the given kinds, deduplicated and ordered by their
// first occurrence in the text. If no kinds are passed, all kinds are considered. Mass mentions
// contribute nothing here, see IsMentioned and MentionsEveryone.
//
// A user that is also resolved as a member is only returned once, as the member.
func (m *Mentions) GetMentions(kinds ...Kind) []entity.Mentionable {
	if len(kinds) == 0 {
		kinds = allKinds
	}
	entries := make([]*mentionEntry, 0)
	index := make(map[mentionKey]*mentionEntry)
	add := func(kind Kind, mentionable entity.Mentionable, offset int) {
		key := mentionKey{kind: kind, id: mentionable.Snowflake()}
		if entry, ok := index[key]; ok {
			entry.mentionable = mentionable
			if offset < entry.offset {
				entry.offset = offset
			}
			return
		}
		entry := &mentionEntry{mentionable: mentionable, offset: offset}
		index[key] = entry
		entries = append(entries, entry)
	}
	done := make(map[Kind]bool)
	for _, kind := range kinds {
		if kind == KindMember {
			kind = KindUser // Same slot, users and members are merged
		}
		if done[kind] {
			continue
		}
		switch kind {
		case KindUser:
			users, members := m.userExtraction(), m.memberExtraction()
			for _, u := range users.items {
				add(KindUser, u, users.offset(u.ID))
			}
			for _, member := range members.items {
				add(KindUser, member, members.offset(member.Snowflake()))
			}
		case KindRole:
			roles := m.roleExtraction()
			for _, r := range roles.items {
				add(KindRole, r, roles.offset(r.ID))
			}
		case KindChannel:
			channels := m.channelExtraction()
			for _, c := range channels.items {
				add(KindChannel, c, channels.offset(c.ID))
			}
		case KindEmote:
			emotes := m.emoteExtraction()
			for _, e := range emotes.items {
				add(KindEmote, e, emotes.offset(e.ID))
			}
		default:
			continue // Mass mentions and unknown kinds
		}
		done[kind] = true
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].offset < entries[j].offset
	})
	mentions := make([]entity.Mentionable, len(entries))
	for i, entry := range entries {
		mentions[i] = entry.mentionable
	}
	return mentions
}
