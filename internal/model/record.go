package model

import "time"

// GenerationRecord captures one generated (or merged) test class so later
// runs can be inspected with the view command.
type GenerationRecord struct {
	ClassName   string    `yaml:"class"`
	PackageName string    `yaml:"package,omitempty"`
	TargetPath  Path      `yaml:"target"`
	Methods     int       `yaml:"methods"`
	Merged      bool      `yaml:"merged"`
	GeneratedAt time.Time `yaml:"generated_at"`
}
