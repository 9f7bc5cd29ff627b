package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
	"github.com/smartcontractkit/smbls/bls"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	DefaultConfigFile = "blskey.yaml"
	DefaultKeyFile    = "bls_key.cbor"
)

type Config struct {
	Curve           bls.Curve           `yaml:"curve"`
	GroupAssignment bls.GroupAssignment `yaml:"group_assignment"`
	KeyFile         string              `yaml:"key_file"`
	LogLevel        logrus.Level        `yaml:"log_level"`
}

func (c *Config) Default() {
	c.Curve = bls.BLS12381
	c.GroupAssignment = bls.ShortPublicKeys
	c.KeyFile = DefaultKeyFile
	c.LogLevel = logrus.WarnLevel
}

func (c *Config) Schema() (bls.SignatureSchema, error) {
	return bls.NewSignatureSchema(c.Curve, c.GroupAssignment)
}

func LoadConfig(conf *Config, path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, conf)
}

func (c *Config) RegisterFlags(f *pflag.FlagSet, cmd *cobra.Command) {
	f.StringP("config-file", "c", DefaultConfigFile, "Configuration file path, ignored if the default file does not exist")
	f.TextVar(&c.Curve, "curve", c.Curve, "Curve: [alt_bn128, bls12_381]")
	f.TextVarP(&c.GroupAssignment, "group-assignment", "g", c.GroupAssignment, "Group assignment: [short-signatures, short-public-keys]")
	f.StringVarP(&c.KeyFile, "key-file", "k", c.KeyFile, "Key file path")
	f.TextVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Log level: [error, warn, info, debug, trace]")

	_ = cmd.MarkPersistentFlagFilename("config-file", "yaml", "yml")
	_ = cmd.MarkPersistentFlagFilename("key-file")
}

// FromCmdline loads the configuration file and applies the flags explicitly set on the command line on top of it.
// The flags must have been registered with RegisterFlags on the same Config.
func (c *Config) FromCmdline(f *pflag.FlagSet) error {
	confPath, err := f.GetString("config-file")
	if err != nil {
		panic(err)
	}

	// flag values are stored in c directly, keep them before the file overwrites c
	fromFlags := *c
	if err := LoadConfig(c, confPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || f.Changed("config-file") {
			return err
		}
	}

	if f.Changed("curve") {
		c.Curve = fromFlags.Curve
	}
	if f.Changed("group-assignment") {
		c.GroupAssignment = fromFlags.GroupAssignment
	}
	if f.Changed("key-file") {
		c.KeyFile = fromFlags.KeyFile
	}
	if f.Changed("log-level") {
		c.LogLevel = fromFlags.LogLevel
	}
	return nil
}
