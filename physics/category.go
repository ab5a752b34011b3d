package physics

import "strings"

// Category is a collision category bitmask set at body creation
type Category uint32

const (
	CategoryProjectile Category = 1 << iota
	CategoryGround
	CategoryEnemy
	CategoryTarget
	CategoryProp

	CategoryNone Category = 0
	CategoryAll  Category = CategoryProjectile | CategoryGround | CategoryEnemy | CategoryTarget | CategoryProp
)

var categoryTags = [...]struct {
	cat Category
	tag string
}{
	{CategoryProjectile, "projectile"},
	{CategoryGround, "ground"},
	{CategoryEnemy, "enemy"},
	{CategoryTarget, "target"},
	{CategoryProp, "prop"},
}

// Has reports whether any bit of other is set in c
func (c Category) Has(other Category) bool {
	return c&other != 0
}

// Tags returns the broad-phase tags for every bit set in c
func (c Category) Tags() []string {
	tags := make([]string, 0, len(categoryTags))
	for _, ct := range categoryTags {
		if c&ct.cat != 0 {
			tags = append(tags, ct.tag)
		}
	}
	return tags
}

func (c Category) String() string {
	if c == CategoryNone {
		return "none"
	}
	return strings.Join(c.Tags(), "|")
}

// ParseCategory parses a "|" or "," separated list of category names
func ParseCategory(s string) (Category, bool) {
	var c Category
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "all" {
			c |= CategoryAll
			continue
		}
		found := false
		for _, ct := range categoryTags {
			if ct.tag == part {
				c |= ct.cat
				found = true
				break
			}
		}
		if !found {
			return CategoryNone, false
		}
	}
	return c, true
}
