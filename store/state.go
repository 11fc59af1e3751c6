// store persists the engine's training state: the labeled sample
// set, the derived style profile and the connection point table.
// State travels in two forms: a single JSON document (handy for
// export and sync) and a local SQLite database (the usual on-device
// form).
//
// Persistence is whole-state oriented, matching how the engine
// derives styles: a profile is replaced, never patched, so partial
// writes can't leave samples and profile out of sync.
package store

import "fmt"
import "encoding/json"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/style"
import "github.com/bilalghalib/Cursive-sub000/train"
import "github.com/bilalghalib/Cursive-sub000/connect"

// The complete persisted training state of one user.
type State struct {
	Samples map[string][]ink.Stroke `json:"samples"`
	Profile style.Profile `json:"styleProfile"`
	Connections map[string]connect.Anchors `json:"connectionPoints"`
}

// Builds a [State] from live engine values. Nil sample sets and
// tables are valid and stored as empty.
func NewState(samples *train.SampleSet, profile style.Profile, connections *connect.Table) State {
	state := State{ Profile: profile }
	if samples != nil {
		state.Samples = samples.Map()
	} else {
		state.Samples = map[string][]ink.Stroke{}
	}
	if connections != nil {
		state.Connections = connections.Map()
	} else {
		state.Connections = map[string]connect.Anchors{}
	}
	return state
}

// Returns the state's samples as a live [train.SampleSet].
func (self State) SampleSet() *train.SampleSet {
	return train.FromMap(self.Samples)
}

// Returns the state's connection points as a live [connect.Table].
func (self State) ConnectionTable() *connect.Table {
	return connect.TableFromMap(self.Connections)
}

// Serializes the state as a single JSON document.
func EncodeState(state State) ([]byte, error) {
	data, err := json.Marshal(&state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode training state: %w", err)
	}
	return data, nil
}

// Deserializes a state previously produced by [EncodeState]().
func DecodeState(data []byte) (State, error) {
	var state State
	err := json.Unmarshal(data, &state)
	if err != nil {
		return State{}, fmt.Errorf("failed to decode training state: %w", err)
	}
	if state.Samples == nil { state.Samples = map[string][]ink.Stroke{} }
	if state.Connections == nil { state.Connections = map[string]connect.Anchors{} }
	return state, nil
}
