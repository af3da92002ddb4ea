package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tnqbao/gau-hackathon-service/service"
)

// Compiler turns loosely typed unit arguments into a validated
// DockerTemplate and writes it out as the published artifact.
type Compiler struct {
	validate *validator.Validate
	tempDir  string
}

// NewCompiler writes template files under tempDir, or the system temp
// directory when tempDir is empty.
func NewCompiler(tempDir string) *Compiler {
	return &Compiler{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tempDir:  tempDir,
	}
}

// Compile decodes, normalizes and validates every unit. The first malformed
// unit aborts the whole template.
func (c *Compiler) Compile(name, description string, units []map[string]interface{}) (*DockerTemplate, error) {
	if strings.TrimSpace(name) == "" {
		return nil, service.NewValidationError("template name is required")
	}
	if len(units) == 0 {
		return nil, service.NewValidationError("template %s has no virtual environment", name)
	}

	tpl := &DockerTemplate{
		Name:                name,
		Description:         description,
		VirtualEnvironments: make([]DockerTemplateUnit, 0, len(units)),
	}
	for i, raw := range units {
		unit, err := c.compileUnit(raw)
		if err != nil {
			return nil, service.NewValidationError("virtual environment %d: %v", i, err)
		}
		tpl.VirtualEnvironments = append(tpl.VirtualEnvironments, *unit)
	}
	return tpl, nil
}

func (c *Compiler) compileUnit(raw map[string]interface{}) (*DockerTemplateUnit, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	unit := defaultUnit()
	if err := json.Unmarshal(data, &unit); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("field %s must be %s", typeErr.Field, typeErr.Type)
		}
		return nil, err
	}

	normalize(&unit)

	if err := c.validate.Struct(unit); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fe := validationErrs[0]
			return nil, fmt.Errorf("field %s failed on '%s'", fe.Namespace(), fe.Tag())
		}
		return nil, err
	}
	return &unit, nil
}

func normalize(unit *DockerTemplateUnit) {
	if unit.Provider == "" {
		unit.Provider = "docker"
	}
	if unit.Name == "" {
		unit.Name = nameFromImage(unit.Image)
	}
	for i := range unit.Ports {
		if unit.Ports[i].Protocol == "" {
			unit.Ports[i].Protocol = "tcp"
		}
		unit.Ports[i].Protocol = strings.ToLower(unit.Ports[i].Protocol)
	}
	if unit.Remote != nil && unit.Remote.Provider == "" {
		unit.Remote.Provider = "guacamole"
	}
	if unit.HostConfig.LogConfig.Type == "" {
		unit.HostConfig.LogConfig.Type = "json-file"
	}
}

// nameFromImage derives a container name from an image reference, e.g.
// "rastasheep/ubuntu-sshd:14.04" gives "ubuntu-sshd".
func nameFromImage(image string) string {
	name := image
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, ":"); i >= 0 {
		name = name[:i]
	}
	return name
}

// WriteFile stores the template in a temporary .js file and returns its
// path. The caller removes the file.
func (c *Compiler) WriteFile(tpl *DockerTemplate) (string, error) {
	data, err := json.MarshalIndent(tpl, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to encode template %s: %w", tpl.Name, err)
	}

	f, err := os.CreateTemp(c.tempDir, "template-*.js")
	if err != nil {
		return "", fmt.Errorf("failed to create template file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write template file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close template file: %w", err)
	}
	return f.Name(), nil
}
