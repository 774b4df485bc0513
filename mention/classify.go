package mention

import (
	"heckel.io/mentionbot/entity"
)

// IsMentioned returns true if the entity is referenced by the message, considering only the
// given kinds. If no kinds are passed, all kinds are considered.
//
// Besides direct mentions, membership is taken into account: a member is mentioned as a user if
// its user is, a member or user is mentioned as a role if it has one of the mentioned roles, and
// a role is mentioned if a mentioned member has it.
// Mass mentions match any user or member, but only if the message is allowed to mention everyone.
func (m *Mentions) IsMentioned(mentionable entity.Mentionable, kinds ...Kind) bool {
	if isNil(mentionable) {
		return false
	}
	if len(kinds) == 0 {
		kinds = allKinds
	}
	userEntity := isUserEntity(mentionable)
	for _, kind := range kinds {
		switch kind {
		case KindHere:
			if userEntity && m.isMass(hereToken) {
				return true
			}
		case KindEveryone:
			if userEntity && m.isMass(everyoneToken) {
				return true
			}
		case KindUser:
			if m.isUserMentioned(mentionable) {
				return true
			}
		case KindMember:
			if m.isMemberMentioned(mentionable) {
				return true
			}
		case KindRole:
			if m.isRoleMentioned(mentionable) {
				return true
			}
		case KindChannel:
			if c, ok := mentionable.(*entity.Channel); ok && c.Type.IsText() && m.channelExtraction().has(c.ID) {
				return true
			}
		case KindEmote:
			if e, ok := mentionable.(*entity.CustomEmoji); ok && m.emoteExtraction().has(e.ID) {
				return true
			}
		}
	}
	return false
}

func (m *Mentions) isUserMentioned(mentionable entity.Mentionable) bool {
	switch e := mentionable.(type) {
	case *entity.User:
		return m.userExtraction().has(e.ID)
	case *entity.Member:
		return e.User != nil && m.userExtraction().has(e.User.ID)
	default:
		return false
	}
}

func (m *Mentions) isMemberMentioned(mentionable entity.Mentionable) bool {
	switch e := mentionable.(type) {
	case *entity.Member:
		return (e.Guild.IsZero() || e.Guild == m.resolver.Guild) && m.memberExtraction().has(e.Snowflake())
	case *entity.User:
		return m.memberExtraction().has(e.ID)
	default:
		return false
	}
}

func (m *Mentions) isRoleMentioned(mentionable entity.Mentionable) bool {
	switch e := mentionable.(type) {
	case *entity.Role:
		if m.roleExtraction().has(e.ID) {
			return true
		}
		for _, member := range m.memberExtraction().items {
			if member.HasRole(e.ID) {
				return true
			}
		}
		return false
	case *entity.Member:
		return e.HasAnyRole(m.roleExtraction().ids())
	case *entity.User:
		member, ok := m.resolver.memberOf(e.ID).Get()
		return ok && member.HasAnyRole(m.roleExtraction().ids())
	default:
		return false
	}
}

func isUserEntity(mentionable entity.Mentionable) bool {
	switch mentionable.(type) {
	case *entity.User, *entity.Member:
		return true
	default:
		return false
	}
}

// isNil catches both nil interfaces and typed nil pointers of the known entity types
func isNil(mentionable entity.Mentionable) bool {
	switch e := mentionable.(type) {
	case nil:
		return true
	case *entity.User:
		return e == nil
	case *entity.Member:
		return e == nil
	case *entity.Role:
		return e == nil
	case *entity.Channel:
		return e == nil
	case *entity.CustomEmoji:
		return e == nil
	default:
		return false
	}
}
