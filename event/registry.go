package event

import (
	"fmt"
	"reflect"
	"strings"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

// registerType maps a name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct, nil if the event has none
func registerType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

func init() {
	registerType("CharacterTyped", EventCharacterTyped, &CharacterTypedPayload{})
	registerType("Pointer", EventPointer, &PointerPayload{})

	registerType("GameReset", EventGameReset, nil)
	registerType("PauseToggle", EventPauseToggle, nil)

	registerType("Mistype", EventMistype, &MistypePayload{})
	registerType("LineComplete", EventLineComplete, &LineCompletePayload{})
	registerType("ShapeComplete", EventShapeComplete, &ShapeCompletePayload{})
	registerType("AttemptDiscarded", EventAttemptDiscarded, &AttemptDiscardedPayload{})
	registerType("TierPromoted", EventTierPromoted, &TierPromotedPayload{})
	registerType("NoContent", EventNoContent, &NoContentPayload{})
	registerType("NoTargetShape", EventNoTargetShape, &NoContentPayload{})
	registerType("GameOver", EventGameOver, &GameOverPayload{})
}

// GetEventType returns the EventType for a name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	for n, et := range nameToType {
		if strings.EqualFold(n, name) {
			return et, true
		}
	}
	return 0, false
}

// String returns the registered name of the event type
func (et EventType) String() string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(et))
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// IsCue reports whether the event is core output rather than input
func (et EventType) IsCue() bool {
	return et >= EventMistype && et <= EventGameOver
}
