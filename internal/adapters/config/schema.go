package config

// Quirefile represents the structure of the quire.yaml project file.
type Quirefile struct {
	Root              string            `yaml:"root"`
	Input             string            `yaml:"input"`
	Output            string            `yaml:"output"`
	PackagePath       string            `yaml:"package-path"`
	CreationTimestamp string            `yaml:"creation-timestamp"`
	Inputs            map[string]string `yaml:"inputs"`
	Jobs              int               `yaml:"jobs"`
	Deps              DepsDTO           `yaml:"deps"`
}

// DepsDTO represents the dependency file settings.
type DepsDTO struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}
