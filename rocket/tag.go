package rocket

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Tag classifies the other party of a collision. The zero value is TagOther,
// which is also what an untagged body carries.
type Tag int

const (
	TagOther Tag = iota
	TagFriendly
	TagRefuel
	TagGoal
)

var tagNames = map[Tag]string{
	TagOther:    "other",
	TagFriendly: "friendly",
	TagRefuel:   "refuel",
	TagGoal:     "goal",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return tagNames[TagOther]
}

// ParseTag maps a tag name to a Tag, ignoring case. Unknown names, including
// obstacle names such as "rock", are TagOther.
func ParseTag(name string) Tag {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "friendly":
		return TagFriendly
	case "refuel":
		return TagRefuel
	case "goal":
		return TagGoal
	default:
		return TagOther
	}
}

func (t *Tag) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	*t = ParseTag(name)
	return nil
}

func (t Tag) MarshalYAML() (any, error) {
	return t.String(), nil
}
