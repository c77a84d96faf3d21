package manifest

// Component is a registry manifest for one named component.
type Component struct {
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	Files                []File   `json:"files"`
	Dependencies         []string `json:"dependencies,omitempty"`
	RegistryDependencies []string `json:"registryDependencies,omitempty"`
}

// File is a single file shipped by a component. Name is relative to the
// project's components directory and uses forward slashes.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// HasDependencies reports whether the component declares package dependencies.
func (c *Component) HasDependencies() bool {
	return len(c.Dependencies) > 0
}

// HasRegistryDependencies reports whether the component pulls in other components.
func (c *Component) HasRegistryDependencies() bool {
	return len(c.RegistryDependencies) > 0
}
