// Package conversation implements the scripted measurement-taking dialog as a
// pure state machine: no I/O, no clock, no state beyond its inputs.
package conversation

import (
	"fmt"
	"strings"
)

const (
	replyGreeting = "¡Hola! Soy TecnoBotv1, tu asistente para tomar medidas.\n\n" +
		"Por favor, dime tu nombre para comenzar."
	replyAskTopSize = "Gracias %s!\n\n" +
		"Ahora necesito tu talla de ropa superior (S/M/L/XL/XXL).\n" +
		"Por favor, indica solo la letra correspondiente."
	replyInvalidTopSize = "Por favor, indica una talla válida (S/M/L/XL/XXL)."
	replyAskBottomSize  = "¡Perfecto!\n\n" +
		"Ahora necesito tu talla de pantalón (30/32/34/36/38/40/42/44).\n" +
		"Por favor, indica solo el número."
	replyInvalidBottomSize = "Por favor, indica una talla válida (30/32/34/36/38/40/42/44)."
	replyConfirmData       = "¡Excelente!\n\n" +
		"He registrado los siguientes datos:\n" +
		"Nombre: %s\n" +
		"Talla Superior: %s\n" +
		"Talla Inferior: %s\n\n" +
		"¿Los datos son correctos? (Responde SI o NO)"
	replySaved = "¡Perfecto! Tus datos han sido guardados.\n\n" +
		"Gracias por usar TecnoBotv1. ¿Necesitas algo más? (SI/NO)"
	replyRestart      = "De acuerdo, empecemos de nuevo.\n\nPor favor, dime tu nombre."
	replyInvalidYesNo = "Por favor, responde SI o NO."
	replyFarewell     = "¡Gracias por usar TecnoBotv1!\nQue tengas un excelente día."
	replyApology      = "¡Hola! Parece que hubo un error. Empecemos de nuevo.\n\n" +
		"Por favor, dime tu nombre."
)

var validTopSizes = map[string]bool{
	"S": true, "M": true, "L": true, "XL": true, "XXL": true,
}

var validBottomSizes = map[string]bool{
	"30": true, "32": true, "34": true, "36": true,
	"38": true, "40": true, "42": true, "44": true,
}

// Advance feeds one inbound text into the dialog and returns the resulting
// state and the single reply to send back. done is true only when the dialog
// reached its terminal farewell, in which case the caller must discard the
// state instead of persisting it.
func Advance(state State, text string) (next State, reply string, done bool) {
	switch state.Step {
	case StepStart:
		// The first message only triggers entry; its content is not stored.
		state.Step = StepWaitingName
		return state, replyGreeting, false

	case StepWaitingName:
		state.Data.Name = text
		state.Step = StepWaitingTopSize
		return state, fmt.Sprintf(replyAskTopSize, text), false

	case StepWaitingTopSize:
		size := strings.ToUpper(strings.TrimSpace(text))
		if !validTopSizes[size] {
			return state, replyInvalidTopSize, false
		}
		state.Data.TopSize = size
		state.Step = StepWaitingBottomSize
		return state, replyAskBottomSize, false

	case StepWaitingBottomSize:
		size := strings.TrimSpace(text)
		if !validBottomSizes[size] {
			return state, replyInvalidBottomSize, false
		}
		state.Data.BottomSize = size
		state.Step = StepConfirmData
		reply := fmt.Sprintf(replyConfirmData,
			state.Data.Name, state.Data.TopSize, state.Data.BottomSize)
		return state, reply, false

	case StepConfirmData:
		switch strings.ToUpper(text) {
		case "SI":
			// Confirmed data is handed off to the external record store.
			state.Step = StepAskMoreHelp
			return state, replySaved, false
		case "NO":
			return restart(), replyRestart, false
		default:
			return state, replyInvalidYesNo, false
		}

	case StepAskMoreHelp:
		switch strings.ToUpper(text) {
		case "NO":
			return state, replyFarewell, true
		case "SI":
			return restart(), replyRestart, false
		default:
			return state, replyInvalidYesNo, false
		}
	}

	// Unrecognized step, e.g. a corrupt value deserialized from an external
	// store. Recover by restarting the script.
	return restart(), replyApology, false
}

func restart() State {
	return State{Step: StepWaitingName}
}
