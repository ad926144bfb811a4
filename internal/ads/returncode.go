package ads

import "fmt"

// ReturnCode is the 32-bit ADS result code embedded in the ADS header of
// every response. Zero means success; every other value is a specific
// failure reported by the global/router/device/client/real-time/winsock
// ranges of the ADS specification. Unknown numeric codes round-trip as
// themselves: ReturnCode(n) for any n not named below.
//
// Named values are grounded on the Beckhoff TE1000 return-code table
// (see original_source/packages/tcads-core/src/ads/return_codes.rs).
type ReturnCode uint32

const (
	Ok ReturnCode = 0x0000

	// Global error codes (0x01..0x1E).
	ErrInternal           ReturnCode = 0x0001
	ErrNoRTime            ReturnCode = 0x0002
	ErrAllocLockedMem     ReturnCode = 0x0003
	ErrInsertMailbox      ReturnCode = 0x0004
	ErrWrongReceiveHMsg   ReturnCode = 0x0005
	ErrTargetPortNotFound ReturnCode = 0x0006
	ErrTargetMachineNotFound ReturnCode = 0x0007
	ErrUnknownCmdID       ReturnCode = 0x0008
	ErrBadTaskID          ReturnCode = 0x0009
	ErrNoIO               ReturnCode = 0x000A
	ErrUnknownAMSCmd      ReturnCode = 0x000B
	ErrWin32Error         ReturnCode = 0x000C
	ErrPortNotConnected   ReturnCode = 0x000D
	ErrInvalidAMSLength   ReturnCode = 0x000E
	ErrInvalidAMSNetID    ReturnCode = 0x000F
	ErrLowInstLevel       ReturnCode = 0x0010
	ErrNoDebug            ReturnCode = 0x0011
	ErrPortDisabled       ReturnCode = 0x0012
	ErrPortAlreadyConnected ReturnCode = 0x0013
	ErrAMSSyncW32Error    ReturnCode = 0x0014
	ErrAMSSyncTimeout     ReturnCode = 0x0015
	ErrAMSSyncError       ReturnCode = 0x0016
	ErrAMSSyncNoIndexInMap ReturnCode = 0x0017
	ErrInvalidAMSPort     ReturnCode = 0x0018
	ErrNoMemory           ReturnCode = 0x0019
	ErrTCPSend            ReturnCode = 0x001A
	ErrHostUnreachable    ReturnCode = 0x001B
	ErrInvalidAMSFragment ReturnCode = 0x001C
	ErrTLSSend            ReturnCode = 0x001D
	ErrAccessDenied       ReturnCode = 0x001E

	// Router error codes (0x500..0x50D).
	RouterErrNoLockedMemory    ReturnCode = 0x0500
	RouterErrResizeMemory      ReturnCode = 0x0501
	RouterErrMailboxFull       ReturnCode = 0x0502
	RouterErrDebugBoxFull      ReturnCode = 0x0503
	RouterErrUnknownPortType   ReturnCode = 0x0504
	RouterErrNotInitialized    ReturnCode = 0x0505
	RouterErrPortAlreadyInUse  ReturnCode = 0x0506
	RouterErrNotRegistered     ReturnCode = 0x0507
	RouterErrNoMoreQueues      ReturnCode = 0x0508
	RouterErrInvalidPort       ReturnCode = 0x0509
	RouterErrNotActivated      ReturnCode = 0x050A
	RouterErrFragmentBoxFull   ReturnCode = 0x050B
	RouterErrFragmentTimeout   ReturnCode = 0x050C
	RouterErrToBeRemoved       ReturnCode = 0x050D

	// Device/ADS error codes (0x700..0x739).
	AdsErrDeviceError              ReturnCode = 0x0700
	AdsErrDeviceSrvNotSupp         ReturnCode = 0x0701
	AdsErrDeviceInvalidGrp         ReturnCode = 0x0702
	AdsErrDeviceInvalidOffset      ReturnCode = 0x0703
	AdsErrDeviceInvalidAccess      ReturnCode = 0x0704
	AdsErrDeviceInvalidSize        ReturnCode = 0x0705
	AdsErrDeviceInvalidData        ReturnCode = 0x0706
	AdsErrDeviceNotReady           ReturnCode = 0x0707
	AdsErrDeviceBusy               ReturnCode = 0x0708
	AdsErrDeviceInvalidContext     ReturnCode = 0x0709
	AdsErrDeviceNoMemory           ReturnCode = 0x070A
	AdsErrDeviceInvalidParm        ReturnCode = 0x070B
	AdsErrDeviceNotFound           ReturnCode = 0x070C
	AdsErrDeviceSyntax             ReturnCode = 0x070D
	AdsErrDeviceIncompatible       ReturnCode = 0x070E
	AdsErrDeviceExists             ReturnCode = 0x070F
	AdsErrDeviceSymbolNotFound     ReturnCode = 0x0710
	AdsErrDeviceSymbolVersionInvalid ReturnCode = 0x0711
	AdsErrDeviceInvalidState       ReturnCode = 0x0712
	AdsErrDeviceTransModeNotSupp   ReturnCode = 0x0713
	AdsErrDeviceNotifyHndInvalid   ReturnCode = 0x0714
	AdsErrDeviceClientUnknown      ReturnCode = 0x0715
	AdsErrDeviceNoMoreHdls         ReturnCode = 0x0716
	AdsErrDeviceInvalidWatchSize   ReturnCode = 0x0717
	AdsErrDeviceNotInit            ReturnCode = 0x0718
	AdsErrDeviceTimeout            ReturnCode = 0x0719
	AdsErrDeviceNoInterface        ReturnCode = 0x071A
	AdsErrDeviceInvalidInterface   ReturnCode = 0x071B
	AdsErrDeviceInvalidClsID       ReturnCode = 0x071C
	AdsErrDeviceInvalidObjID       ReturnCode = 0x071D
	AdsErrDevicePending            ReturnCode = 0x071E
	AdsErrDeviceAborted            ReturnCode = 0x071F
	AdsErrDeviceWarning            ReturnCode = 0x0720
	AdsErrDeviceInvalidArrayIdx    ReturnCode = 0x0721
	AdsErrDeviceSymbolNotActive    ReturnCode = 0x0722
	AdsErrDeviceAccessDenied       ReturnCode = 0x0723
	AdsErrDeviceLicenseNotFound    ReturnCode = 0x0724
	AdsErrDeviceLicenseExpired     ReturnCode = 0x0725
	AdsErrDeviceLicenseExceeded    ReturnCode = 0x0726
	AdsErrDeviceLicenseInvalid     ReturnCode = 0x0727
	AdsErrDeviceException          ReturnCode = 0x072C

	// Client error codes (0x740..0x756).
	AdsErrClientError            ReturnCode = 0x0740
	AdsErrClientInvalidParm      ReturnCode = 0x0741
	AdsErrClientListEmpty        ReturnCode = 0x0742
	AdsErrClientVarUsed          ReturnCode = 0x0743
	AdsErrClientDuplInvokeID     ReturnCode = 0x0744
	AdsErrClientSyncTimeout      ReturnCode = 0x0745
	AdsErrClientW32Error         ReturnCode = 0x0746
	AdsErrClientTimeoutInvalid   ReturnCode = 0x0747
	AdsErrClientPortNotOpen      ReturnCode = 0x0748
	AdsErrClientNoAMSAddr        ReturnCode = 0x0749
	AdsErrClientSyncInternal     ReturnCode = 0x0750
	AdsErrClientAddHash          ReturnCode = 0x0751
	AdsErrClientRemoveHash       ReturnCode = 0x0752
	AdsErrClientNoMoreSym        ReturnCode = 0x0753
	AdsErrClientSyncResInvalid   ReturnCode = 0x0754
	AdsErrClientSyncPortLocked   ReturnCode = 0x0755
	AdsErrClientRequestCancelled ReturnCode = 0x0756

	// Real-time error codes (0x1000..0x101A).
	RTErrInternal          ReturnCode = 0x1000
	RTErrBadTimerPeriods   ReturnCode = 0x1001
	RTErrInvalidTaskPtr    ReturnCode = 0x1002
	RTErrInvalidStackPtr   ReturnCode = 0x1003
	RTErrPrioExists        ReturnCode = 0x1004
	RTErrNoMoreTCB         ReturnCode = 0x1005
	RTErrNoMoreSemas       ReturnCode = 0x1006
	RTErrNoMoreQueues      ReturnCode = 0x1007

	// Winsock error codes (common subset).
	WSAETimedOut    ReturnCode = 0x274C
	WSAEConnRefused ReturnCode = 0x274D
	WSAEHostUnreach ReturnCode = 0x2751
)

var returnCodeNames = map[ReturnCode]string{
	Ok:                               "no error",
	ErrInternal:                      "internal error",
	ErrNoRTime:                       "no real time",
	ErrAllocLockedMem:                "allocation locked - memory error",
	ErrInsertMailbox:                 "mailbox full",
	ErrWrongReceiveHMsg:              "wrong HMSG",
	ErrTargetPortNotFound:            "target port not found",
	ErrTargetMachineNotFound:         "target machine not found",
	ErrUnknownCmdID:                  "unknown command ID",
	ErrBadTaskID:                     "invalid task ID",
	ErrNoIO:                          "no IO",
	ErrUnknownAMSCmd:                 "unknown AMS command",
	ErrWin32Error:                    "Win32 error",
	ErrPortNotConnected:              "port not connected",
	ErrInvalidAMSLength:              "invalid AMS length",
	ErrInvalidAMSNetID:               "invalid AMS net ID",
	ErrLowInstLevel:                  "installation level too low",
	ErrNoDebug:                       "no debugging available",
	ErrPortDisabled:                  "port disabled",
	ErrPortAlreadyConnected:          "port already connected",
	ErrAMSSyncW32Error:               "AMS sync Win32 error",
	ErrAMSSyncTimeout:                "AMS sync timeout",
	ErrAMSSyncError:                  "AMS sync error",
	ErrAMSSyncNoIndexInMap:           "no index map for AMS sync",
	ErrInvalidAMSPort:                "invalid AMS port",
	ErrNoMemory:                      "no memory",
	ErrTCPSend:                       "TCP send error",
	ErrHostUnreachable:               "host unreachable",
	ErrInvalidAMSFragment:            "invalid AMS fragment",
	ErrTLSSend:                       "TLS send error",
	ErrAccessDenied:                  "access denied",
	RouterErrNoLockedMemory:          "router: no locked memory",
	RouterErrResizeMemory:            "router: resize memory failed",
	RouterErrMailboxFull:             "router: mailbox full",
	RouterErrDebugBoxFull:            "router: debug mailbox full",
	RouterErrUnknownPortType:         "router: unknown port type",
	RouterErrNotInitialized:          "router: not initialized",
	RouterErrPortAlreadyInUse:        "router: port already in use",
	RouterErrNotRegistered:           "router: port not registered",
	RouterErrNoMoreQueues:            "router: max ports reached",
	RouterErrInvalidPort:             "router: invalid port",
	RouterErrNotActivated:            "router: not active",
	RouterErrFragmentBoxFull:         "router: fragment mailbox full",
	RouterErrFragmentTimeout:         "router: fragment timeout",
	RouterErrToBeRemoved:             "router: port is removed",
	AdsErrDeviceError:                "device: general device error",
	AdsErrDeviceSrvNotSupp:           "device: service not supported",
	AdsErrDeviceInvalidGrp:           "device: invalid index group",
	AdsErrDeviceInvalidOffset:        "device: invalid index offset",
	AdsErrDeviceInvalidAccess:        "device: reading/writing not permitted",
	AdsErrDeviceInvalidSize:          "device: parameter size not correct",
	AdsErrDeviceInvalidData:          "device: invalid data values",
	AdsErrDeviceNotReady:             "device: not ready to operate",
	AdsErrDeviceBusy:                 "device: busy",
	AdsErrDeviceInvalidContext:       "device: invalid operating system context",
	AdsErrDeviceNoMemory:             "device: insufficient memory",
	AdsErrDeviceInvalidParm:          "device: invalid parameter values",
	AdsErrDeviceNotFound:             "device: not found",
	AdsErrDeviceSyntax:               "device: syntax error",
	AdsErrDeviceIncompatible:         "device: objects do not match",
	AdsErrDeviceExists:               "device: object already exists",
	AdsErrDeviceSymbolNotFound:       "device: symbol not found",
	AdsErrDeviceSymbolVersionInvalid: "device: invalid symbol version",
	AdsErrDeviceInvalidState:         "device: invalid state",
	AdsErrDeviceTransModeNotSupp:     "device: transmission mode not supported",
	AdsErrDeviceNotifyHndInvalid:     "device: notification handle invalid",
	AdsErrDeviceClientUnknown:        "device: notification client not registered",
	AdsErrDeviceNoMoreHdls:           "device: no further handles available",
	AdsErrDeviceInvalidWatchSize:     "device: notification size too large",
	AdsErrDeviceNotInit:              "device: not initialized",
	AdsErrDeviceTimeout:              "device: timeout",
	AdsErrDeviceNoInterface:          "device: interface query failed",
	AdsErrDeviceInvalidInterface:     "device: wrong interface requested",
	AdsErrDeviceInvalidClsID:         "device: invalid class ID",
	AdsErrDeviceInvalidObjID:         "device: invalid object ID",
	AdsErrDevicePending:              "device: request pending",
	AdsErrDeviceAborted:              "device: request aborted",
	AdsErrDeviceWarning:              "device: signal warning",
	AdsErrDeviceInvalidArrayIdx:      "device: invalid array index",
	AdsErrDeviceSymbolNotActive:      "device: symbol not active",
	AdsErrDeviceAccessDenied:         "device: access denied",
	AdsErrDeviceLicenseNotFound:      "device: missing license",
	AdsErrDeviceLicenseExpired:       "device: license expired",
	AdsErrDeviceLicenseExceeded:      "device: license exceeded",
	AdsErrDeviceLicenseInvalid:       "device: invalid license",
	AdsErrDeviceException:            "device: exception at system startup",
	AdsErrClientError:                "client: client error",
	AdsErrClientInvalidParm:          "client: invalid parameter",
	AdsErrClientListEmpty:            "client: polling list is empty",
	AdsErrClientVarUsed:              "client: var connection already in use",
	AdsErrClientDuplInvokeID:         "client: invoke ID already in use",
	AdsErrClientSyncTimeout:          "client: sync timeout",
	AdsErrClientW32Error:             "client: Win32 subsystem error",
	AdsErrClientTimeoutInvalid:       "client: invalid timeout value",
	AdsErrClientPortNotOpen:          "client: port not open",
	AdsErrClientNoAMSAddr:            "client: no AMS address",
	AdsErrClientSyncInternal:         "client: internal sync error",
	AdsErrClientAddHash:              "client: hash table overflow",
	AdsErrClientRemoveHash:           "client: key not found in table",
	AdsErrClientNoMoreSym:            "client: no symbols in cache",
	AdsErrClientSyncResInvalid:       "client: invalid response received",
	AdsErrClientSyncPortLocked:       "client: sync port locked",
	AdsErrClientRequestCancelled:     "client: request was cancelled",
	RTErrInternal:                    "rtime: internal error",
	RTErrBadTimerPeriods:             "rtime: invalid timer value",
	RTErrInvalidTaskPtr:              "rtime: invalid task pointer",
	RTErrInvalidStackPtr:             "rtime: invalid stack pointer",
	RTErrPrioExists:                  "rtime: task priority already assigned",
	RTErrNoMoreTCB:                   "rtime: no free TCB available",
	RTErrNoMoreSemas:                 "rtime: no free semaphores available",
	RTErrNoMoreQueues:                "rtime: no free queue space",
	WSAETimedOut:                     "winsock: connection timed out",
	WSAEConnRefused:                  "winsock: connection refused",
	WSAEHostUnreach:                  "winsock: no route to host",
}

// IsSuccess reports whether the code represents success (0x0000).
func (c ReturnCode) IsSuccess() bool { return c == Ok }

// String returns a human-readable description, falling back to a
// hex-formatted "unknown ADS return code 0x...." for unnamed values.
func (c ReturnCode) String() string {
	if name, ok := returnCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown ADS return code 0x%04X", uint32(c))
}

// Error implements error so a non-zero ReturnCode can be surfaced
// directly as a server-reported error (spec §7: Ads(ReturnCode)).
func (c ReturnCode) Error() string { return c.String() }
