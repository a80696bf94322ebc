package annotatecmder

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/marginaliaco/annotate/pkg/storepath"
)

var _ = Describe("resolveStore", func() {
	var (
		configDir string
		origHome  string
		origFile  string
		origPath  string
	)

	BeforeEach(func() {
		var err error
		configDir, err = os.MkdirTemp("", "annotate-cmd-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			_ = os.RemoveAll(configDir)
		})

		origHome = os.Getenv("HOME")
		origFile = os.Getenv(storepath.EnvFile)
		origPath = os.Getenv("ANNOTATE_STORAGE_PATH")
		Expect(os.Setenv(storepath.EnvFile, "")).To(Succeed())
		Expect(os.Setenv("ANNOTATE_STORAGE_PATH", "")).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Setenv("HOME", origHome)).To(Succeed())
		Expect(os.Setenv(storepath.EnvFile, origFile)).To(Succeed())
		Expect(os.Setenv("ANNOTATE_STORAGE_PATH", origPath)).To(Succeed())
	})

	It("prefers the --file flag", func() {
		path, _, err := resolveStore("/tmp/flagged", configDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("/tmp/flagged"))
	})

	It("uses storage.path from config.toml when no flag is given", func() {
		cfgPath := filepath.Join(configDir, "config.toml")
		Expect(os.WriteFile(cfgPath, []byte("[storage]\npath = \"/tmp/configured\"\n"), 0o600)).To(Succeed())

		path, _, err := resolveStore("", configDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("/tmp/configured"))
	})

	It("defaults to .annotations under the home directory", func() {
		homeDir, err := os.MkdirTemp("", "annotate-home-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			_ = os.RemoveAll(homeDir)
		})
		Expect(os.Setenv("HOME", homeDir)).To(Succeed())

		path, _, err := resolveStore("", configDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(homeDir, ".annotations")))
	})

	It("returns the configured preview width", func() {
		cfgPath := filepath.Join(configDir, "config.toml")
		Expect(os.WriteFile(cfgPath, []byte("[ui]\npreview_width = 120\n"), 0o600)).To(Succeed())

		_, width, err := resolveStore("/tmp/anywhere", configDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(width).To(Equal(120))
	})
})
