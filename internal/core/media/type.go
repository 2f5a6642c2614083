package media

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"photofeed/internal/core/integrity"
)

// Type is the kind of a media attachment. It is stored and serialized by
// name, never by its integer code.
type Type int

const (
	Image Type = iota + 1
	Video
	Audio
)

var typeNames = map[Type]string{
	Image: "IMAGE",
	Video: "VIDEO",
	Audio: "AUDIO",
}

func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType accepts exactly IMAGE, VIDEO or AUDIO.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, &integrity.ValidationError{Entity: Entity, Field: "type", Rule: "mediatype", Param: name}
}

func (t Type) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &integrity.ValidationError{Entity: Entity, Field: "type", Rule: "mediatype", Param: t.String()}
	}
	return json.Marshal(t.String())
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("media type: %w", err)
	}
	parsed, err := ParseType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Type) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, &integrity.ValidationError{Entity: Entity, Field: "type", Rule: "mediatype", Param: t.String()}
	}
	return t.String(), nil
}

func (t *Type) Scan(src any) error {
	var name string
	switch v := src.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	default:
		return fmt.Errorf("media type: cannot scan %T", src)
	}
	parsed, err := ParseType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
