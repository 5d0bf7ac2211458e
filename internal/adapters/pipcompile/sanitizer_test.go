package pipcompile_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/relock/internal/adapters/pipcompile"
	"go.trai.ch/relock/internal/core/domain"
)

const setupPy = `import os
from setuptools import setup, find_packages

setup(
    name=os.environ["PKG_NAME"],
    version=open("VERSION").read(),
    python_requires=">=3.8",
    install_requires=[
        "django>=4.0",
        'requests[security]==2.31.0',
    ],
    setup_requires=["wheel"],
    packages=find_packages(),
)
`

func TestSanitizer_SetupPy(t *testing.T) {
	got := pipcompile.NewSanitizer().Sanitize(domain.ManifestFile{Name: "setup.py", Content: setupPy, Role: domain.RoleBuildConfig})

	g := goldie.New(t)
	g.Assert(t, "sanitized_setup_py", []byte(got))
}

func TestSanitizer_SetupCfg(t *testing.T) {
	got := pipcompile.NewSanitizer().Sanitize(domain.ManifestFile{Name: "pkg/setup.cfg", Content: "[metadata]\nname = real\n"})
	assert.Equal(t, "[metadata]\nname = sanitized-package\n", got)
}

func TestSanitizer_OtherFilesUnchanged(t *testing.T) {
	got := pipcompile.NewSanitizer().Sanitize(domain.ManifestFile{Name: "a.in", Content: "django\n"})
	assert.Equal(t, "django\n", got)
}
