package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/marginaliaco/annotate/pkg/config"
)

var _ = Describe("Configer", func() {
	var configDir string

	BeforeEach(func() {
		var err error
		configDir, err = os.MkdirTemp("", "annotate-config-*")
		Expect(err).NotTo(HaveOccurred())
		configDir, err = filepath.EvalSymlinks(configDir)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			_ = os.RemoveAll(configDir)
		})
	})

	It("returns defaults when no config file exists", func() {
		cfger, err := config.NewConfiger(configDir)
		Expect(err).NotTo(HaveOccurred())

		cfg, err := cfger.LoadConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Storage.Path).To(BeEmpty())
		Expect(cfg.UI.PreviewWidth).To(Equal(uint(80)))
	})

	It("round-trips save and load", func() {
		cfger, err := config.NewConfiger(configDir)
		Expect(err).NotTo(HaveOccurred())

		cfg := config.NewDefaultConfig()
		cfg.Storage.Path = "/tmp/notes"
		Expect(cfger.SaveConfig(cfg)).To(Succeed())

		loaded, err := cfger.LoadConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Storage.Path).To(Equal("/tmp/notes"))
	})

	It("fills zero-value fields with defaults on load", func() {
		path := filepath.Join(configDir, "config.toml")
		Expect(os.WriteFile(path, []byte("[storage]\npath = \"/tmp/notes\"\n"), 0o600)).To(Succeed())

		cfger, err := config.NewConfiger(configDir)
		Expect(err).NotTo(HaveOccurred())

		cfg, err := cfger.LoadConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Storage.Path).To(Equal("/tmp/notes"))
		Expect(cfg.UI.PreviewWidth).To(Equal(uint(80)))
	})

	It("rejects malformed TOML", func() {
		path := filepath.Join(configDir, "config.toml")
		Expect(os.WriteFile(path, []byte("not toml at all ["), 0o600)).To(Succeed())

		cfger, err := config.NewConfiger(configDir)
		Expect(err).NotTo(HaveOccurred())

		_, err = cfger.LoadConfig()
		Expect(err).To(HaveOccurred())
	})

	Describe("key registry", func() {
		It("lists the supported keys in section order", func() {
			Expect(config.ValidConfigKeys()).To(Equal([]string{
				"storage.path",
				"ui.preview_width",
			}))
		})

		It("validates key names", func() {
			Expect(config.IsValidConfigKey("storage.path")).To(BeTrue())
			Expect(config.IsValidConfigKey("storage.nope")).To(BeFalse())
		})

		It("sets and gets values by key", func() {
			cfger, err := config.NewConfiger(configDir)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfger.SetConfigValue("storage.path", "/tmp/elsewhere")).To(Succeed())

			value, err := cfger.GetConfigValue("storage.path")
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal("/tmp/elsewhere"))
		})

		It("rejects a non-numeric preview width", func() {
			cfger, err := config.NewConfiger(configDir)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfger.SetConfigValue("ui.preview_width", "wide")).NotTo(Succeed())
		})

		It("rejects unknown keys", func() {
			cfger, err := config.NewConfiger(configDir)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfger.SetConfigValue("bogus.key", "x")).NotTo(Succeed())
			_, err = cfger.GetConfigValue("bogus.key")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("InitViper", func() {
		var origEnv string

		BeforeEach(func() {
			origEnv = os.Getenv("ANNOTATE_STORAGE_PATH")
		})

		AfterEach(func() {
			Expect(os.Setenv("ANNOTATE_STORAGE_PATH", origEnv)).To(Succeed())
		})

		It("applies defaults when nothing else is set", func() {
			v, err := config.InitViper(configDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.GetUint("ui.preview_width")).To(Equal(uint(80)))
			Expect(v.GetString("storage.path")).To(BeEmpty())
		})

		It("reads values from config.toml", func() {
			path := filepath.Join(configDir, "config.toml")
			Expect(os.WriteFile(path, []byte("[storage]\npath = \"/tmp/from-file\"\n"), 0o600)).To(Succeed())

			v, err := config.InitViper(configDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.GetString("storage.path")).To(Equal("/tmp/from-file"))
		})

		It("lets environment variables override the file", func() {
			path := filepath.Join(configDir, "config.toml")
			Expect(os.WriteFile(path, []byte("[storage]\npath = \"/tmp/from-file\"\n"), 0o600)).To(Succeed())
			Expect(os.Setenv("ANNOTATE_STORAGE_PATH", "/tmp/from-env")).To(Succeed())

			v, err := config.InitViper(configDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.GetString("storage.path")).To(Equal("/tmp/from-env"))
		})
	})
})
