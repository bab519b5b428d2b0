package internal

import (
	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a normalized input event: one virtual button press or release,
// mapped from whatever physical device produced it.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor translates raw SDL input events into virtual button
// events. Keyboards (dev machines) and game controllers (handhelds) feed
// the same vocabulary so navigation code never sees device specifics.
type InputProcessor struct {
	controllers []*sdl.GameController
}

var inputProcessor *InputProcessor

// InitInputProcessor creates the processor and opens every attached game
// controller. Called once from Init, after the SDL subsystems are up.
func InitInputProcessor() {
	inputProcessor = &InputProcessor{}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		controller := sdl.GameControllerOpen(i)
		if controller == nil {
			GetInternalLogger().Warn("Failed to open game controller", "index", i)
			continue
		}
		inputProcessor.controllers = append(inputProcessor.controllers, controller)
		GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
	}
}

// GetInputProcessor returns the processor created by Init. Valid only
// between Init and Close.
func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

// CloseAllControllers closes every controller the processor opened.
func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for _, controller := range inputProcessor.controllers {
		controller.Close()
	}
	inputProcessor.controllers = nil
}

// ProcessSDLEvent maps an SDL event to a virtual button event, or nil when
// the event carries no recognized button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button := mapKey(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN}
	case *sdl.ControllerButtonEvent:
		button := mapControllerButton(e.Button)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}
	}
	return nil
}

func mapKey(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_z:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_x:
		return constants.VirtualButtonB
	case sdl.K_c:
		return constants.VirtualButtonX
	case sdl.K_v:
		return constants.VirtualButtonY
	case sdl.K_s:
		return constants.VirtualButtonStart
	case sdl.K_SPACE:
		return constants.VirtualButtonSelect
	case sdl.K_m:
		return constants.VirtualButtonMenu
	case sdl.K_BACKSPACE:
		return constants.VirtualButtonBack
	default:
		return constants.VirtualButtonUnassigned
	}
}

func mapControllerButton(button uint8) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_X:
		return constants.VirtualButtonX
	case sdl.CONTROLLER_BUTTON_Y:
		return constants.VirtualButtonY
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}
