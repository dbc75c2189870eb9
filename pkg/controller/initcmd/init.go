package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/kubedep/kubedep/refs/heads/main/json-schema/kubedep.json
# kubedep - https://github.com/kubedep/kubedep
ignore_rules:
# - extensions-v1beta1-ingress
# - import-apps-v1beta2
exclude_dirs:
# - charts
# - third_party
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file with a commented template if the file
// doesn't exist yet. An existing file is left untouched.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
