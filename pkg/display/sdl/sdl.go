// Package sdl implements a display driver on top of SDL2. Importing the
// package installs the driver under the name "sdl".
package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gabalah/gabalah/internal/renderer"
	"github.com/gabalah/gabalah/pkg/display"
)

func init() {
	display.Install("sdl", &Driver{})
}

const windowTitle = "Gabalah"

// Driver displays frames in an SDL2 window. Start must be called from the
// main goroutine; SDL's event handling is not safe anywhere else.
type Driver struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// rgb is the frame expanded to 3 bytes per pixel, reused across
	// frames
	rgb []byte
}

// Start opens the window and shows frames until the channel closes or the
// user quits. Closing stop tells the frame producer to shut down; frames
// still in flight are drained.
func (d *Driver) Start(frames <-chan []uint8, stop chan<- struct{}) error {
	if err := d.open(); err != nil {
		return err
	}

	stopped := false
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				stopped = d.requestStop(stop, stopped)
			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
					stopped = d.requestStop(stop, stopped)
				}
			}
		}

		select {
		case frame, ok := <-frames:
			if !ok {
				return nil
			}
			if err := d.draw(frame); err != nil {
				return err
			}
		default:
			sdl.Delay(5)
		}
	}
}

// Stop tears the window down.
func (d *Driver) Stop() error {
	if d.texture != nil {
		_ = d.texture.Destroy()
	}
	if d.renderer != nil {
		_ = d.renderer.Destroy()
	}
	if d.window != nil {
		_ = d.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func (d *Driver) open() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl: init: %w", err)
	}

	var err error
	d.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		renderer.Width*2, renderer.Height*2,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("sdl: create window: %w", err)
	}

	d.renderer, err = sdl.CreateRenderer(d.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("sdl: create renderer: %w", err)
	}
	if err := d.renderer.SetLogicalSize(renderer.Width, renderer.Height); err != nil {
		return fmt.Errorf("sdl: set logical size: %w", err)
	}

	d.texture, err = d.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB24),
		int(sdl.TEXTUREACCESS_STREAMING), renderer.Width, renderer.Height)
	if err != nil {
		return fmt.Errorf("sdl: create texture: %w", err)
	}

	d.rgb = make([]byte, renderer.Width*renderer.Height*3)
	return nil
}

func (d *Driver) requestStop(stop chan<- struct{}, stopped bool) bool {
	if !stopped {
		close(stop)
	}
	return true
}

func (d *Driver) draw(frame []uint8) error {
	for i, grey := range frame {
		d.rgb[i*3] = grey
		d.rgb[i*3+1] = grey
		d.rgb[i*3+2] = grey
	}
	if err := d.texture.Update(nil, d.rgb, renderer.Width*3); err != nil {
		return fmt.Errorf("sdl: update texture: %w", err)
	}
	if err := d.renderer.Clear(); err != nil {
		return fmt.Errorf("sdl: clear: %w", err)
	}
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return fmt.Errorf("sdl: copy: %w", err)
	}
	d.renderer.Present()
	return nil
}
