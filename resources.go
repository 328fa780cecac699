package getaway

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResourceType is the logical name of a sprite.
type ResourceType string

const (
	ResourceCar   ResourceType = "car"
	ResourceWater ResourceType = "water"
)

// animationFrames is how many sprites the player and police cycle through.
const animationFrames = 4

// PlayerFrame names the i-th player sprite.
func PlayerFrame(i int) ResourceType { return ResourceType(fmt.Sprintf("player_%d", i)) }

// PoliceFrame names the i-th police sprite.
func PoliceFrame(i int) ResourceType { return ResourceType(fmt.Sprintf("police_%d", i)) }

// Sprites lists every sprite the scene draws.
func Sprites() []ResourceType {
	list := make([]ResourceType, 0, 2*animationFrames+2)
	for i := 0; i < animationFrames; i++ {
		list = append(list, PlayerFrame(i))
	}
	for i := 0; i < animationFrames; i++ {
		list = append(list, PoliceFrame(i))
	}
	return append(list, ResourceCar, ResourceWater)
}

// ResourceManager loads sprites from an asset tree and caches them.
// A sprite that fails to load is replaced by a drawn fallback so a missing
// file never stops the game.
type ResourceManager struct {
	fsys   fs.FS
	cache  map[ResourceType]*ebiten.Image
	mutex  sync.RWMutex
	loaded bool
}

// NewResourceManager reads sprites from images/<name>.png in fsys. A nil
// fsys means every sprite uses its fallback.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:  fsys,
		cache: make(map[ResourceType]*ebiten.Image),
	}
}

// LoadResource loads a single sprite, from cache when possible.
func (rm *ResourceManager) LoadResource(resourceType ResourceType) (*ebiten.Image, error) {
	rm.mutex.RLock()
	if img, exists := rm.cache[resourceType]; exists {
		rm.mutex.RUnlock()
		return img, nil
	}
	rm.mutex.RUnlock()

	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	if img, exists := rm.cache[resourceType]; exists {
		return img, nil
	}

	src, err := decodeResource(rm.fsys, resourceType)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	rm.cache[resourceType] = img
	log.Printf("Loaded resource: %s", resourceType)

	return img, nil
}

// LoadResourceSafe loads a sprite and falls back to a drawn one on failure.
func (rm *ResourceManager) LoadResourceSafe(resourceType ResourceType) *ebiten.Image {
	img, err := rm.LoadResource(resourceType)
	if err == nil {
		return img
	}
	log.Printf("warning: failed to load resource %s: %v; using fallback", resourceType, err)

	img = rm.CreateFallbackImage(resourceType)
	rm.mutex.Lock()
	rm.cache[resourceType] = img
	rm.mutex.Unlock()
	return img
}

// PreloadResources loads every sprite up front.
func (rm *ResourceManager) PreloadResources() {
	rm.mutex.RLock()
	loaded := rm.loaded
	rm.mutex.RUnlock()
	if loaded {
		return
	}

	for _, r := range Sprites() {
		rm.LoadResourceSafe(r)
	}

	rm.mutex.Lock()
	rm.loaded = true
	rm.mutex.Unlock()
	log.Println("All resources preloaded")
}

// GetResource returns a sprite, loading it if needed.
func (rm *ResourceManager) GetResource(resourceType ResourceType) *ebiten.Image {
	return rm.LoadResourceSafe(resourceType)
}

var errNoAssets = errors.New("no asset directory")

func resourcePath(resourceType ResourceType) string {
	return "images/" + string(resourceType) + ".png"
}

// decodeResource reads and decodes a sprite without touching the GPU.
func decodeResource(fsys fs.FS, resourceType ResourceType) (image.Image, error) {
	if fsys == nil {
		return nil, errNoAssets
	}
	file, err := fsys.Open(resourcePath(resourceType))
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", resourceType, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode resource %s: %w", resourceType, err)
	}
	return img, nil
}

var (
	skinColor   = color.RGBA{240, 200, 160, 255}
	hoodieColor = color.RGBA{40, 40, 48, 255}
	policeBlue  = color.RGBA{30, 60, 160, 255}
	sirenRed    = color.RGBA{230, 30, 30, 255}
	sirenBlue   = color.RGBA{60, 140, 255, 255}
	carRed      = color.RGBA{200, 40, 40, 255}
	glassColor  = color.RGBA{170, 210, 230, 255}
	tyreColor   = color.RGBA{20, 20, 20, 255}
	waterColor  = color.RGBA{120, 190, 255, 220}
)

// CreateFallbackImage draws a stand-in for a missing sprite.
func (rm *ResourceManager) CreateFallbackImage(resourceType ResourceType) *ebiten.Image {
	for i := 0; i < animationFrames; i++ {
		switch resourceType {
		case PlayerFrame(i):
			return drawRunner(i)
		case PoliceFrame(i):
			return drawPolice(i)
		}
	}
	switch resourceType {
	case ResourceCar:
		return drawCar()
	case ResourceWater:
		img := ebiten.NewImage(20, 10)
		vector.DrawFilledRect(img, 0, 2, 20, 6, waterColor, true)
		vector.DrawFilledCircle(img, 5, 5, 5, waterColor, true)
		return img
	}
	img := ebiten.NewImage(16, 16)
	img.Fill(color.RGBA{255, 0, 255, 255})
	return img
}

// drawRunner is a stick figure whose legs swing with the frame.
func drawRunner(frame int) *ebiten.Image {
	img := ebiten.NewImage(64, 64)
	vector.DrawFilledCircle(img, 32, 12, 9, skinColor, true)
	vector.DrawFilledRect(img, 22, 22, 20, 22, hoodieColor, true)
	swing := float32(frame%2*2-1) * 6
	vector.StrokeLine(img, 28, 44, 28-swing, 62, 5, hoodieColor, true)
	vector.StrokeLine(img, 36, 44, 36+swing, 62, 5, hoodieColor, true)
	vector.StrokeLine(img, 22, 26, 14+swing, 38, 4, skinColor, true)
	vector.StrokeLine(img, 42, 26, 50-swing, 38, 4, skinColor, true)
	return img
}

// drawPolice is an officer with a siren that alternates colour per frame.
func drawPolice(frame int) *ebiten.Image {
	img := ebiten.NewImage(64, 64)
	siren := sirenRed
	if frame%2 == 1 {
		siren = sirenBlue
	}
	vector.DrawFilledRect(img, 24, 0, 16, 6, siren, true)
	vector.DrawFilledCircle(img, 32, 16, 9, skinColor, true)
	vector.DrawFilledRect(img, 20, 26, 24, 20, policeBlue, true)
	swing := float32(frame%2*2-1) * 5
	vector.StrokeLine(img, 27, 46, 27+swing, 62, 5, policeBlue, true)
	vector.StrokeLine(img, 37, 46, 37-swing, 62, 5, policeBlue, true)
	return img
}

func drawCar() *ebiten.Image {
	img := ebiten.NewImage(100, 50)
	vector.DrawFilledRect(img, 0, 14, 100, 24, carRed, true)
	vector.DrawFilledRect(img, 22, 2, 50, 14, carRed, true)
	vector.DrawFilledRect(img, 28, 5, 16, 9, glassColor, true)
	vector.DrawFilledRect(img, 50, 5, 16, 9, glassColor, true)
	vector.DrawFilledCircle(img, 22, 40, 9, tyreColor, true)
	vector.DrawFilledCircle(img, 78, 40, 9, tyreColor, true)
	return img
}
