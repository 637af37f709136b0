package scenario

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is an ordered list of scoring checks loaded from a Lua script.
type Scenario struct {
	Name  string
	Steps []Step
}

// Step is a single scenario instruction.
type Step struct {
	Kind string
	Args map[string]any
}

// LoadScenarioFromFile runs a Lua script and returns the Scenario it builds.
func LoadScenarioFromFile(path string) (*Scenario, error) {
	state := newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	scenario, err := callScenario(state)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

// LoadScenarioFromString runs Lua source and returns the Scenario it builds.
func LoadScenarioFromString(name, source string) (*Scenario, error) {
	state := newState()
	if err := lua.LoadString(state, source); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	scenario, err := callScenario(state)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = name
	}
	return scenario, nil
}

func newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerScenarioType(state)
	registerScenarioConstructor(state)
	return state
}

func callScenario(state *lua.State) (*Scenario, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}
	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	return scenario, nil
}

func registerScenarioType(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerScenarioConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "score", Function: scenarioScore},
	{Name: "roll", Function: scenarioRoll},
	{Name: "permute", Function: scenarioPermute},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

// scenarioScore records s:score({faces}, expected).
func scenarioScore(state *lua.State) int {
	scenario := checkScenario(state)
	dice := checkDice(state, 2)
	expect := lua.CheckInteger(state, 3)
	appendStep(scenario, "score", map[string]any{"dice": dice, "expect": expect})
	return 0
}

// scenarioRoll records s:roll({count = n, seed = s, expect = score}).
func scenarioRoll(state *lua.State) int {
	scenario := checkScenario(state)
	opts := optionalTable(state, 2)
	for key, value := range opts {
		if _, ok := value.(int); !ok {
			lua.Errorf(state, "roll option %s must be an integer", key)
		}
	}
	appendStep(scenario, "roll", opts)
	return 0
}

// scenarioPermute records s:permute({faces}).
func scenarioPermute(state *lua.State) int {
	scenario := checkScenario(state)
	dice := checkDice(state, 2)
	appendStep(scenario, "permute", map[string]any{"dice": dice})
	return 0
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(scenario *Scenario, kind string, data map[string]any) {
	if scenario == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: data})
}

// checkDice reads a Lua sequence of integers at index.
func checkDice(state *lua.State, index int) []int {
	lua.CheckType(state, index, lua.TypeTable)
	index = state.AbsIndex(index)

	values := map[int]int{}
	maxIndex := 0
	state.PushNil()
	for state.Next(index) {
		key, keyOK := luaInteger(state, -2)
		if !keyOK || key < 1 {
			lua.ArgumentError(state, index, "dice must be a list")
		}
		value, ok := luaInteger(state, -1)
		if !ok {
			lua.ArgumentError(state, index, "dice must be integers")
		}
		values[key] = value
		if key > maxIndex {
			maxIndex = key
		}
		state.Pop(1)
	}
	if len(values) != maxIndex {
		lua.ArgumentError(state, index, "dice list has holes")
	}

	dice := make([]int, maxIndex)
	for i := range dice {
		dice[i] = values[i+1]
	}
	return dice
}

// luaInteger reads a number at index that has no fractional part.
func luaInteger(state *lua.State, index int) (int, bool) {
	if state.TypeOf(index) != lua.TypeNumber {
		return 0, false
	}
	value, ok := state.ToNumber(index)
	if !ok || value != float64(int(value)) {
		return 0, false
	}
	return int(value), true
}

func optionalTable(state *lua.State, index int) map[string]any {
	if state.IsNoneOrNil(index) || state.TypeOf(index) != lua.TypeTable {
		return map[string]any{}
	}
	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		if value == float64(int(value)) {
			return int(value)
		}
		return value
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	default:
		return nil
	}
}
