package internal

import (
	"os"

	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/constants"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// Event is one abstract button transition produced from raw SDL input.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor translates SDL keyboard and controller events into
// virtual button events. Keyboard mapping exists so the shell can be
// driven on a desktop in dev mode; on device the game controller
// mapping is the one that matters.
type InputProcessor struct{}

var (
	inputProcessor  *InputProcessor
	controllers     []*sdl.GameController
	flipFaceButtons atomic.Bool
)

// SetFlipFaceButtons enables or disables direct face button mapping
// (A=A, B=B) instead of the Nintendo-style swap. Safe to call at any
// time, from any goroutine.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons.Store(flip)
}

func InitInputProcessor() {
	if os.Getenv(constants.FlipFaceButtonsEnvVar) != "" {
		SetFlipFaceButtons(true)
	}

	inputProcessor = &InputProcessor{}
	openGameControllers()
}

func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

func openGameControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}

		controller := sdl.GameControllerOpen(i)
		if controller == nil {
			GetInternalLogger().Warn("Failed to open game controller", "index", i, "error", sdl.GetError())
			continue
		}

		controllers = append(controllers, controller)
		GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
	}
}

func CloseAllControllers() {
	for _, controller := range controllers {
		controller.Close()
	}
	controllers = nil
}

// ProcessSDLEvent returns the virtual button transition for event, or
// nil when the event does not map to one.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat > 0 {
			return nil
		}
		button := keyToButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerButtonEvent:
		button := controllerToButton(e.Button)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}
	}

	return nil
}

// keyToButton maps the desktop dev-mode keyboard onto the handheld
// layout: arrows for the d-pad, Enter/Escape for confirm/back.
func keyToButton(sym sdl.Keycode) constants.VirtualButton {
	switch sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		return constants.VirtualButtonB
	case sdl.K_x:
		return constants.VirtualButtonX
	case sdl.K_y:
		return constants.VirtualButtonY
	case sdl.K_s:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	case sdl.K_m:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

// controllerToButton maps SDL's positional face buttons onto labeled
// ones. SDL reports Xbox positions, most supported handhelds print
// Nintendo labels, so A and B (and X and Y) swap unless flipped.
func controllerToButton(button uint8) constants.VirtualButton {
	flipped := flipFaceButtons.Load()

	switch button {
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_UP):
		return constants.VirtualButtonUp
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN):
		return constants.VirtualButtonDown
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT):
		return constants.VirtualButtonLeft
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):
		return constants.VirtualButtonRight
	case uint8(sdl.CONTROLLER_BUTTON_A):
		if flipped {
			return constants.VirtualButtonA
		}
		return constants.VirtualButtonB
	case uint8(sdl.CONTROLLER_BUTTON_B):
		if flipped {
			return constants.VirtualButtonB
		}
		return constants.VirtualButtonA
	case uint8(sdl.CONTROLLER_BUTTON_X):
		if flipped {
			return constants.VirtualButtonX
		}
		return constants.VirtualButtonY
	case uint8(sdl.CONTROLLER_BUTTON_Y):
		if flipped {
			return constants.VirtualButtonY
		}
		return constants.VirtualButtonX
	case uint8(sdl.CONTROLLER_BUTTON_START):
		return constants.VirtualButtonStart
	case uint8(sdl.CONTROLLER_BUTTON_BACK):
		return constants.VirtualButtonSelect
	case uint8(sdl.CONTROLLER_BUTTON_GUIDE):
		return constants.VirtualButtonMenu
	case uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):
		return constants.VirtualButtonL1
	case uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER):
		return constants.VirtualButtonR1
	default:
		return constants.VirtualButtonUnassigned
	}
}
