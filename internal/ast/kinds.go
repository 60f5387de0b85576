// Package ast defines the typed, validated AST nodes the directive
// checker produces, together with the host-expression surface it
// consumes. Clause and construct nodes are immutable once constructed;
// the checker builds them only after all semantic checks have run.
package ast

// DirectiveKind is the closed enumeration of directive construct kinds.
type DirectiveKind int

const (
	DirectiveInvalid DirectiveKind = iota

	// Compute constructs.
	DirectiveParallel
	DirectiveSerial
	DirectiveKernels

	// Data environment constructs.
	DirectiveData
	DirectiveEnterData
	DirectiveExitData
	DirectiveHostData

	// Loop and combined constructs.
	DirectiveLoop
	DirectiveParallelLoop
	DirectiveSerialLoop
	DirectiveKernelsLoop

	// Executable and runtime-control directives.
	DirectiveUpdate
	DirectiveWait
	DirectiveInit
	DirectiveShutdown
	DirectiveSet
)

func (k DirectiveKind) String() string {
	switch k {
	case DirectiveParallel:
		return "parallel"
	case DirectiveSerial:
		return "serial"
	case DirectiveKernels:
		return "kernels"
	case DirectiveData:
		return "data"
	case DirectiveEnterData:
		return "enter data"
	case DirectiveExitData:
		return "exit data"
	case DirectiveHostData:
		return "host_data"
	case DirectiveLoop:
		return "loop"
	case DirectiveParallelLoop:
		return "parallel loop"
	case DirectiveSerialLoop:
		return "serial loop"
	case DirectiveKernelsLoop:
		return "kernels loop"
	case DirectiveUpdate:
		return "update"
	case DirectiveWait:
		return "wait"
	case DirectiveInit:
		return "init"
	case DirectiveShutdown:
		return "shutdown"
	case DirectiveSet:
		return "set"
	default:
		return "<invalid>"
	}
}

// IsComputeDirective reports whether k is one of the compute
// constructs, which are the only constructs with fully implemented
// clause restrictions.
func IsComputeDirective(k DirectiveKind) bool {
	switch k {
	case DirectiveParallel, DirectiveSerial, DirectiveKernels:
		return true
	default:
		return false
	}
}

// ClauseKind is the closed enumeration of clause kinds.
type ClauseKind int

const (
	ClauseInvalid ClauseKind = iota

	// Implemented clauses.
	ClauseDefault
	ClauseIf
	ClauseSelf
	ClauseNumGangs
	ClauseNumWorkers
	ClauseVectorLength
	ClausePrivate

	// Parsed but not yet semantically implemented.
	ClauseFirstPrivate
	ClauseCopy
	ClauseCopyIn
	ClauseCopyOut
	ClauseCreate
	ClauseNoCreate
	ClausePresent
	ClauseDevicePtr
	ClauseAttach
	ClauseAsync
	ClauseWait
	ClauseGang
	ClauseWorker
	ClauseVector
	ClauseSeq
	ClauseIndependent
	ClauseAuto
	ClauseReduction
	ClauseCollapse
	ClauseTile
	ClauseDeviceType
)

func (k ClauseKind) String() string {
	switch k {
	case ClauseDefault:
		return "default"
	case ClauseIf:
		return "if"
	case ClauseSelf:
		return "self"
	case ClauseNumGangs:
		return "num_gangs"
	case ClauseNumWorkers:
		return "num_workers"
	case ClauseVectorLength:
		return "vector_length"
	case ClausePrivate:
		return "private"
	case ClauseFirstPrivate:
		return "firstprivate"
	case ClauseCopy:
		return "copy"
	case ClauseCopyIn:
		return "copyin"
	case ClauseCopyOut:
		return "copyout"
	case ClauseCreate:
		return "create"
	case ClauseNoCreate:
		return "no_create"
	case ClausePresent:
		return "present"
	case ClauseDevicePtr:
		return "deviceptr"
	case ClauseAttach:
		return "attach"
	case ClauseAsync:
		return "async"
	case ClauseWait:
		return "wait"
	case ClauseGang:
		return "gang"
	case ClauseWorker:
		return "worker"
	case ClauseVector:
		return "vector"
	case ClauseSeq:
		return "seq"
	case ClauseIndependent:
		return "independent"
	case ClauseAuto:
		return "auto"
	case ClauseReduction:
		return "reduction"
	case ClauseCollapse:
		return "collapse"
	case ClauseTile:
		return "tile"
	case ClauseDeviceType:
		return "device_type"
	default:
		return "<invalid>"
	}
}

// DefaultKind is the argument of a 'default' clause.
type DefaultKind int

const (
	DefaultInvalid DefaultKind = iota
	DefaultNone
	DefaultPresent
)

func (k DefaultKind) String() string {
	switch k {
	case DefaultNone:
		return "none"
	case DefaultPresent:
		return "present"
	default:
		return "<invalid>"
	}
}
