package content

// AllCategory selects every project.
const AllCategory = "All"

// Projects returns the projects in category. AllCategory and the empty string
// return every project; any other value is matched exactly.
func (s *Site) Projects(category string) []Project {
	if s == nil {
		return nil
	}
	if category == "" || category == AllCategory {
		return append([]Project(nil), s.Portfolio.Projects...)
	}
	out := make([]Project, 0, len(s.Portfolio.Projects))
	for _, project := range s.Portfolio.Projects {
		if project.Category == category {
			out = append(out, project)
		}
	}
	return out
}

// HasCategory reports whether category is offered as a filter.
func (s *Site) HasCategory(category string) bool {
	if s == nil {
		return false
	}
	for _, c := range s.Portfolio.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// FeaturedProjects returns the projects flagged as featured.
func (s *Site) FeaturedProjects() []Project {
	if s == nil {
		return nil
	}
	var out []Project
	for _, project := range s.Portfolio.Projects {
		if project.Featured {
			out = append(out, project)
		}
	}
	return out
}

// PopularPlan returns the highlighted package, if any.
func (s *Site) PopularPlan() (Plan, bool) {
	if s == nil {
		return Plan{}, false
	}
	for _, plan := range s.Packages.Plans {
		if plan.Popular {
			return plan, true
		}
	}
	return Plan{}, false
}
