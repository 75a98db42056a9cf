package data

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/CalebHellmund/calebhellmund.github.io/internal/model"
)

// MaxFeatured caps how many projects summary views show.
const MaxFeatured = 3

// Directory is an ordered, read-only table of projects.
type Directory []model.Project

var Projects = Directory{
	{
		Slug:            "example-project",
		Title:           "Example Project",
		Description:     "This is a quick example of a project.",
		LongDescription: "This is a longer description of this project. My hope is that this works and I will add my actual projects soon.",
		TechStack:       []string{"Python", "Cpp", "other stuff"},
		Tags:            []string{"AI/ML", "Backend", "Search"},
		DemoURL:         "https://demo.example.com/example",
		Image:           "/images/example.png",
		Featured:        true,
	},
}

// BySlug returns the project with exactly the given slug.
func (d Directory) BySlug(slug string) (model.Project, bool) {
	for _, p := range d {
		if p.Slug == slug {
			return p, true
		}
	}
	return model.Project{}, false
}

// Featured returns up to MaxFeatured featured projects in declaration order.
func (d Directory) Featured() []model.Project {
	featured := make([]model.Project, 0, MaxFeatured)
	for _, p := range d {
		if !p.Featured {
			continue
		}
		featured = append(featured, p)
		if len(featured) == MaxFeatured {
			break
		}
	}
	return featured
}

// Validate checks every entry against its struct rules and rejects duplicate slugs.
func (d Directory) Validate() error {
	validate := validator.New()
	seen := make(map[string]int, len(d))
	for i, p := range d {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("project %d (%q): %w", i, p.Slug, err)
		}
		if j, ok := seen[p.Slug]; ok {
			return fmt.Errorf("project %d: slug %q already used by project %d", i, p.Slug, j)
		}
		seen[p.Slug] = i
	}
	return nil
}

func GetProjectBySlug(slug string) (model.Project, bool) {
	return Projects.BySlug(slug)
}

func GetFeaturedProjects() []model.Project {
	return Projects.Featured()
}
