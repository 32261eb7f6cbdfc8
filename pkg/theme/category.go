package theme

import (
	"slices"
	"strings"

	"github.com/matzehuels/pagesmith/pkg/errors"
)

// FindCategory returns the category with the given id.
func (c Catalog) FindCategory(id string) (Category, bool) {
	i := c.categoryIndex(id)
	if i < 0 {
		return Category{}, false
	}
	return c.Categories[i], true
}

func (c Catalog) categoryIndex(id string) int {
	return slices.IndexFunc(c.Categories, func(cat Category) bool { return cat.ID == id })
}

// AddCategory adds a category with the given name.
func (c Catalog) AddCategory(name string) (Catalog, Category, error) {
	name = strings.TrimSpace(name)
	if err := errors.ValidateName(name); err != nil {
		return c, Category{}, err
	}
	cat := Category{ID: newID("category"), Name: name}
	out := c.clone()
	out.Categories = append(out.Categories, cat)
	return out, cat, nil
}

// RenameCategory renames a category. The general category cannot be
// renamed.
func (c Catalog) RenameCategory(id, name string) (Catalog, error) {
	i := c.categoryIndex(id)
	if i < 0 {
		return c, errors.New(errors.ErrCodeCategoryNotFound, "category %q not found", id)
	}
	if c.Categories[i].IsDefault || id == GeneralCategoryID {
		return c, errors.New(errors.ErrCodeConflict, "the default category cannot be renamed")
	}
	name = strings.TrimSpace(name)
	if err := errors.ValidateName(name); err != nil {
		return c, err
	}
	out := c.clone()
	out.Categories[i].Name = name
	return out, nil
}

// DeleteCategory removes a category and moves its templates to general.
// The general category cannot be deleted.
func (c Catalog) DeleteCategory(id string) (Catalog, error) {
	i := c.categoryIndex(id)
	if i < 0 {
		return c, errors.New(errors.ErrCodeCategoryNotFound, "category %q not found", id)
	}
	if c.Categories[i].IsDefault || id == GeneralCategoryID {
		return c, errors.New(errors.ErrCodeConflict, "the default category cannot be deleted")
	}
	out := c.clone()
	out.Categories = slices.Delete(out.Categories, i, i+1)
	for j := range out.Templates {
		if out.Templates[j].Category == id {
			out.Templates[j].Category = GeneralCategoryID
		}
	}
	return out, nil
}
