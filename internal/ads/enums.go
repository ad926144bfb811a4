// Package ads implements the ADS inner-packet layer: the 32-byte ADS
// header, per-command request/response bodies, the open enumerations
// that appear on the wire, and primitive value types (FILETIME, ADS
// string) specific to the ADS payload.
package ads

import "fmt"

// CommandID identifies the ADS command carried by a packet.
type CommandID uint16

const (
	CmdInvalid               CommandID = 0x0000
	CmdReadDeviceInfo        CommandID = 0x0001
	CmdRead                  CommandID = 0x0002
	CmdWrite                 CommandID = 0x0003
	CmdReadState             CommandID = 0x0004
	CmdWriteControl          CommandID = 0x0005
	CmdAddDeviceNotification CommandID = 0x0006
	CmdDelDeviceNotification CommandID = 0x0007
	CmdDeviceNotification    CommandID = 0x0008
	CmdReadWrite             CommandID = 0x0009
)

var commandIDNames = map[CommandID]string{
	CmdInvalid:               "Invalid",
	CmdReadDeviceInfo:        "ReadDeviceInfo",
	CmdRead:                  "Read",
	CmdWrite:                 "Write",
	CmdReadState:             "ReadState",
	CmdWriteControl:          "WriteControl",
	CmdAddDeviceNotification: "AddDeviceNotification",
	CmdDelDeviceNotification: "DelDeviceNotification",
	CmdDeviceNotification:    "DeviceNotification",
	CmdReadWrite:             "ReadWrite",
}

func (c CommandID) String() string {
	if name, ok := commandIDNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CommandID(0x%04X)", uint16(c))
}

// State is the ADS device lifecycle state reported by ReadState and
// carried by WriteControl. This is an open enum: unrecognized numeric
// codes keep their raw value for round-tripping and String renders them
// as "Unknown(n)".
type State uint16

const (
	StateInvalid    State = 0
	StateIdle       State = 1
	StateReset      State = 2
	StateInit       State = 3
	StateStart      State = 4
	StateRun        State = 5
	StateStop       State = 6
	StateSaveCfg    State = 7
	StateLoadCfg    State = 8
	StatePowerGood  State = 9
	StateError      State = 10
	StateShutdown   State = 11
	StateSuspend    State = 12
	StateResume     State = 13
	StateReconfig   State = 14
	StateConfig     State = 15
	StateStop2      State = 16
	StateRunning    State = 17
	StateBusy       State = 18
	StateException  State = 19
)

var stateNames = map[State]string{
	StateInvalid: "Invalid", StateIdle: "Idle", StateReset: "Reset",
	StateInit: "Init", StateStart: "Start", StateRun: "Run",
	StateStop: "Stop", StateSaveCfg: "SaveConfig", StateLoadCfg: "LoadConfig",
	StatePowerGood: "PowerGood", StateError: "Error", StateShutdown: "Shutdown",
	StateSuspend: "Suspend", StateResume: "Resume", StateReconfig: "Reconfig",
	StateConfig: "Config", StateStop2: "Stop2", StateRunning: "Running",
	StateBusy: "Busy", StateException: "Exception",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint16(s))
}

// DeviceState is an application-defined opaque bitmask; the core treats
// it as an uninterpreted 16-bit value.
type DeviceState uint16

// TransmissionMode controls how AddDeviceNotification delivers samples.
type TransmissionMode uint32

const (
	TransModeNone           TransmissionMode = 0
	TransModeClientCycle    TransmissionMode = 1
	TransModeClientOnChange TransmissionMode = 2
	TransModeServerCycle    TransmissionMode = 3
	TransModeServerOnChange TransmissionMode = 4
)

var transModeNames = map[TransmissionMode]string{
	TransModeNone:           "None",
	TransModeClientCycle:    "ClientCycle",
	TransModeClientOnChange: "ClientOnChange",
	TransModeServerCycle:    "ServerCycle",
	TransModeServerOnChange: "ServerOnChange",
}

func (m TransmissionMode) String() string {
	if name, ok := transModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint32(m))
}

// RouterState is the router lifecycle state carried by a
// RouterNotification payload.
type RouterState uint32

const (
	RouterStop    RouterState = 0
	RouterStart   RouterState = 1
	RouterRemoved RouterState = 2
)

func (s RouterState) String() string {
	switch s {
	case RouterStop:
		return "Stop"
	case RouterStart:
		return "Start"
	case RouterRemoved:
		return "Removed"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(s))
	}
}

// Index group / index offset are plain 32-bit addressing values; no
// dedicated type is needed beyond uint32, but the common well-known
// groups are named here for convenience.
const (
	IndexGroupPLCMemory           uint32 = 0x00004020
	IndexGroupPLCMemoryBit        uint32 = 0x00004021
	IndexGroupPhysicalInputs      uint32 = 0x0000F020
	IndexGroupPhysicalInputsBit   uint32 = 0x0000F021
	IndexGroupPhysicalOutputs     uint32 = 0x0000F030
	IndexGroupPhysicalOutputsBit  uint32 = 0x0000F031
	IndexGroupSumCommandRead      uint32 = 0x0000F080
	IndexGroupSumCommandWrite     uint32 = 0x0000F081
	IndexGroupSumCommandReadWrite uint32 = 0x0000F082
)
