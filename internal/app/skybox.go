package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/torvik/glint/internal/engine/mesh"
	"github.com/torvik/glint/internal/engine/texture"
)

// Cubemap faces in the order the texture loader expects.
var skyboxFaces = [6]string{"right", "left", "top", "bottom", "front", "back"}

var skyboxExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff"}

// loadSkybox builds a skybox from a directory holding one image per
// face, named right/left/top/bottom/front/back with any supported
// extension.
func loadSkybox(dir string) (*mesh.Skybox, error) {
	var paths [6]string
	for i, face := range skyboxFaces {
		path, err := findFace(dir, face)
		if err != nil {
			return nil, err
		}
		paths[i] = path
	}

	cubemap, err := texture.NewCubeMap(paths)
	if err != nil {
		return nil, err
	}
	return mesh.NewSkybox(cubemap), nil
}

func findFace(dir, face string) (string, error) {
	for _, ext := range skyboxExtensions {
		path := filepath.Join(dir, face+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("skybox face %q not found in %s", face, dir)
}
