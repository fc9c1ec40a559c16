package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"derkit/log"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	Keygen: KeygenConfig{
		Bits: 2048,
	},
}

const defaultConfigTemplateText = `# derkit Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Configures key generation.
[keygen]
  # Sets the modulus size of generated RSA keys, in bits.
  bits = {{.Keygen.Bits}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFilename), os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	if _, err := io.Copy(f, bytes.NewReader(GenerateDefaultConfigFile())); err != nil {
		return errors.Wrap(err, "error writing default config file")
	}
	return nil
}

func init() {
	tpl, err := template.New("config").Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = tpl
}
