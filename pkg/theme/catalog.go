package theme

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/layout"
)

// GeneralCategoryID is the id of the category that always exists.
const GeneralCategoryID = "general"

// Template is a saved layout for a site part.
type Template struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	SitePart         SitePart      `json:"sitePart"`
	Layout           layout.Layout `json:"layout"`
	CreatedAt        time.Time     `json:"createdAt"`
	IsActive         bool          `json:"isActive"`
	DisplayCondition string        `json:"displayCondition"`
	Category         string        `json:"category,omitempty"`
}

// Category groups templates.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// General returns the built-in default category.
func General() Category {
	return Category{ID: GeneralCategoryID, Name: "General", IsDefault: true}
}

// Catalog holds every saved template and category.
type Catalog struct {
	Templates  []Template `json:"templates"`
	Categories []Category `json:"categories"`
}

// Replaced in tests.
var (
	now   = time.Now
	newID = func(prefix string) string { return prefix + "-" + uuid.NewString() }
)

// NewCatalog returns an empty catalog with the general category.
func NewCatalog() Catalog {
	return Catalog{Templates: []Template{}, Categories: []Category{General()}}
}

func (c Catalog) clone() Catalog {
	return Catalog{
		Templates:  slices.Clone(c.Templates),
		Categories: slices.Clone(c.Categories),
	}
}

// Normalize repairs a catalog read from storage: the general category is
// present, first and marked default; template layouts are sanitized;
// templates of unknown categories move to general; at most one template
// per part stays active (the most recently created).
func (c Catalog) Normalize() Catalog {
	out := c.clone()
	if out.Templates == nil {
		out.Templates = []Template{}
	}

	cats := []Category{General()}
	known := map[string]bool{GeneralCategoryID: true}
	for _, cat := range out.Categories {
		if known[cat.ID] || cat.ID == "" {
			continue
		}
		cat.IsDefault = false
		known[cat.ID] = true
		cats = append(cats, cat)
	}
	out.Categories = cats

	latest := map[SitePart]int{}
	for i := range out.Templates {
		t := &out.Templates[i]
		t.Layout = layout.Sanitize(t.Layout)
		if t.Category != "" && !known[t.Category] {
			t.Category = GeneralCategoryID
		}
		if !t.IsActive {
			continue
		}
		if j, ok := latest[t.SitePart]; ok {
			if out.Templates[j].CreatedAt.After(t.CreatedAt) {
				t.IsActive = false
				continue
			}
			out.Templates[j].IsActive = false
		}
		latest[t.SitePart] = i
	}
	return out
}

// Save adds a template for part holding a copy of l. The new template is
// active with the part's default condition; other templates of the same
// part are deactivated. An empty category means general.
func (c Catalog) Save(name string, part SitePart, l layout.Layout, category string) (Catalog, Template, error) {
	name = strings.TrimSpace(name)
	if err := errors.ValidateName(name); err != nil {
		return c, Template{}, err
	}
	if !part.Valid() {
		return c, Template{}, errors.New(errors.ErrCodeInvalidInput, "unknown site part %q", part)
	}
	if category == "" {
		category = GeneralCategoryID
	}
	if _, ok := c.FindCategory(category); !ok {
		return c, Template{}, errors.New(errors.ErrCodeCategoryNotFound, "category %q not found", category)
	}

	t := Template{
		ID:               newID("template"),
		Name:             name,
		SitePart:         part,
		Layout:           l.Clone(),
		CreatedAt:        now().UTC(),
		IsActive:         true,
		DisplayCondition: DefaultCondition(part),
		Category:         category,
	}
	out := c.clone()
	for i := range out.Templates {
		if out.Templates[i].SitePart == part {
			out.Templates[i].IsActive = false
		}
	}
	out.Templates = append(out.Templates, t)
	return out, t, nil
}

// Find returns the template with the given id.
func (c Catalog) Find(id string) (Template, bool) {
	i := c.index(id)
	if i < 0 {
		return Template{}, false
	}
	return c.Templates[i], true
}

func (c Catalog) index(id string) int {
	return slices.IndexFunc(c.Templates, func(t Template) bool { return t.ID == id })
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeTemplateNotFound, "template %q not found", id)
}

// SetActive makes the template the active one for its part.
func (c Catalog) SetActive(id string) (Catalog, error) {
	i := c.index(id)
	if i < 0 {
		return c, notFound(id)
	}
	part := c.Templates[i].SitePart
	out := c.clone()
	for j := range out.Templates {
		if out.Templates[j].SitePart == part {
			out.Templates[j].IsActive = out.Templates[j].ID == id
		}
	}
	return out, nil
}

// UpdateCondition sets a template's display condition, which must be one
// of its part's [ConditionOptions].
func (c Catalog) UpdateCondition(id, condition string) (Catalog, error) {
	i := c.index(id)
	if i < 0 {
		return c, notFound(id)
	}
	part := c.Templates[i].SitePart
	if !slices.Contains(conditionOptions[part], condition) {
		return c, errors.New(errors.ErrCodeInvalidCondition,
			"condition %q not available for %s (options: %s)", condition, part, strings.Join(conditionOptions[part], ", "))
	}
	out := c.clone()
	out.Templates[i].DisplayCondition = condition
	return out, nil
}

// Rename changes a template's name.
func (c Catalog) Rename(id, name string) (Catalog, error) {
	i := c.index(id)
	if i < 0 {
		return c, notFound(id)
	}
	name = strings.TrimSpace(name)
	if err := errors.ValidateName(name); err != nil {
		return c, err
	}
	out := c.clone()
	out.Templates[i].Name = name
	return out, nil
}

// Delete removes a template. Deleting the active template leaves its part
// without an active template.
func (c Catalog) Delete(id string) (Catalog, error) {
	i := c.index(id)
	if i < 0 {
		return c, notFound(id)
	}
	out := c.clone()
	out.Templates = slices.Delete(out.Templates, i, i+1)
	return out, nil
}

// ActiveFor returns the active template of part.
func (c Catalog) ActiveFor(part SitePart) (Template, bool) {
	for _, t := range c.Templates {
		if t.SitePart == part && t.IsActive {
			return t, true
		}
	}
	return Template{}, false
}

// ForPart returns the templates of part in creation order. An empty part
// returns all templates.
func (c Catalog) ForPart(part SitePart) []Template {
	var out []Template
	for _, t := range c.Templates {
		if part == "" || t.SitePart == part {
			out = append(out, t)
		}
	}
	return out
}

// PartStatus summarizes one site part.
type PartStatus struct {
	Part       SitePart  `json:"part"`
	Slug       string    `json:"slug"`
	Templates  int       `json:"templates"`
	Active     *Template `json:"active,omitempty"`
	Conditions []string  `json:"conditions"`
}

// Parts summarizes every site part in display order.
func (c Catalog) Parts() []PartStatus {
	out := make([]PartStatus, 0, len(SiteParts))
	for _, p := range SiteParts {
		st := PartStatus{Part: p, Slug: p.Slug(), Conditions: ConditionOptions(p)}
		for _, t := range c.Templates {
			if t.SitePart != p {
				continue
			}
			st.Templates++
			if t.IsActive {
				st.Active = &t
			}
		}
		out = append(out, st)
	}
	return out
}
