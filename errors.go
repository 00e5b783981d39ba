package slite

import (
	"errors"
	"fmt"

	"github.com/orsinium-labs/enum"
)

// Kind classifies a native SQLite result code into a domain error kind.
// The enumeration is closed: every primary and extended result code the
// engine defines maps to exactly one Kind.
type Kind enum.Member[string]

// Kinds for primary result codes.
var (
	KindError      = Kind{Value: "error"}
	KindInternal   = Kind{Value: "internal"}
	KindPerm       = Kind{Value: "perm"}
	KindAbort      = Kind{Value: "abort"}
	KindBusy       = Kind{Value: "busy"}
	KindLocked     = Kind{Value: "locked"}
	KindNoMem      = Kind{Value: "no_mem"}
	KindReadOnly   = Kind{Value: "read_only"}
	KindInterrupt  = Kind{Value: "interrupt"}
	KindIOErr      = Kind{Value: "io_err"}
	KindCorrupt    = Kind{Value: "corrupt"}
	KindNotFound   = Kind{Value: "not_found"}
	KindFull       = Kind{Value: "full"}
	KindCantOpen   = Kind{Value: "cant_open"}
	KindProtocol   = Kind{Value: "protocol"}
	KindEmpty      = Kind{Value: "empty"}
	KindSchema     = Kind{Value: "schema"}
	KindTooBig     = Kind{Value: "too_big"}
	KindConstraint = Kind{Value: "constraint"}
	KindMismatch   = Kind{Value: "mismatch"}
	KindMisuse     = Kind{Value: "misuse"}
	KindNoLFS      = Kind{Value: "no_lfs"}
	KindAuth       = Kind{Value: "auth"}
	KindFormat     = Kind{Value: "format"}
	KindRange      = Kind{Value: "range"}
	KindNotADB     = Kind{Value: "not_a_db"}
	KindNotice     = Kind{Value: "notice"}
	KindWarning    = Kind{Value: "warning"}
)

// Kinds for extended result codes.
var (
	KindErrorMissingCollSeq = Kind{Value: "error_missing_collseq"}
	KindErrorRetry          = Kind{Value: "error_retry"}
	KindErrorSnapshot       = Kind{Value: "error_snapshot"}

	KindIOErrRead              = Kind{Value: "io_err_read"}
	KindIOErrShortRead         = Kind{Value: "io_err_short_read"}
	KindIOErrWrite             = Kind{Value: "io_err_write"}
	KindIOErrFsync             = Kind{Value: "io_err_fsync"}
	KindIOErrDirFsync          = Kind{Value: "io_err_dir_fsync"}
	KindIOErrTruncate          = Kind{Value: "io_err_truncate"}
	KindIOErrFstat             = Kind{Value: "io_err_fstat"}
	KindIOErrUnlock            = Kind{Value: "io_err_unlock"}
	KindIOErrRDLock            = Kind{Value: "io_err_rdlock"}
	KindIOErrDelete            = Kind{Value: "io_err_delete"}
	KindIOErrBlocked           = Kind{Value: "io_err_blocked"}
	KindIOErrNoMem             = Kind{Value: "io_err_no_mem"}
	KindIOErrAccess            = Kind{Value: "io_err_access"}
	KindIOErrCheckReservedLock = Kind{Value: "io_err_check_reserved_lock"}
	KindIOErrLock              = Kind{Value: "io_err_lock"}
	KindIOErrClose             = Kind{Value: "io_err_close"}
	KindIOErrDirClose          = Kind{Value: "io_err_dir_close"}
	KindIOErrSHMOpen           = Kind{Value: "io_err_shm_open"}
	KindIOErrSHMSize           = Kind{Value: "io_err_shm_size"}
	KindIOErrSHMLock           = Kind{Value: "io_err_shm_lock"}
	KindIOErrSHMMap            = Kind{Value: "io_err_shm_map"}
	KindIOErrSeek              = Kind{Value: "io_err_seek"}
	KindIOErrDeleteNoEnt       = Kind{Value: "io_err_delete_no_ent"}
	KindIOErrMMap              = Kind{Value: "io_err_mmap"}
	KindIOErrGetTempPath       = Kind{Value: "io_err_get_temp_path"}
	KindIOErrConvPath          = Kind{Value: "io_err_conv_path"}
	KindIOErrVNode             = Kind{Value: "io_err_vnode"}
	KindIOErrAuth              = Kind{Value: "io_err_auth"}
	KindIOErrBeginAtomic       = Kind{Value: "io_err_begin_atomic"}
	KindIOErrCommitAtomic      = Kind{Value: "io_err_commit_atomic"}
	KindIOErrRollbackAtomic    = Kind{Value: "io_err_rollback_atomic"}
	KindIOErrData              = Kind{Value: "io_err_data"}
	KindIOErrCorruptFS         = Kind{Value: "io_err_corrupt_fs"}
	KindIOErrInPage            = Kind{Value: "io_err_in_page"}

	KindLockedSharedCache = Kind{Value: "locked_shared_cache"}
	KindLockedVTab        = Kind{Value: "locked_vtab"}

	KindBusyRecovery = Kind{Value: "busy_recovery"}
	KindBusySnapshot = Kind{Value: "busy_snapshot"}
	KindBusyTimeout  = Kind{Value: "busy_timeout"}

	KindCantOpenNoTempDir = Kind{Value: "cant_open_no_temp_dir"}
	KindCantOpenIsDir     = Kind{Value: "cant_open_is_dir"}
	KindCantOpenFullPath  = Kind{Value: "cant_open_full_path"}
	KindCantOpenConvPath  = Kind{Value: "cant_open_conv_path"}
	KindCantOpenDirtyWAL  = Kind{Value: "cant_open_dirty_wal"}
	KindCantOpenSymlink   = Kind{Value: "cant_open_symlink"}

	KindCorruptVTab     = Kind{Value: "corrupt_vtab"}
	KindCorruptSequence = Kind{Value: "corrupt_sequence"}
	KindCorruptIndex    = Kind{Value: "corrupt_index"}

	KindReadOnlyRecovery  = Kind{Value: "read_only_recovery"}
	KindReadOnlyCantLock  = Kind{Value: "read_only_cant_lock"}
	KindReadOnlyRollback  = Kind{Value: "read_only_rollback"}
	KindReadOnlyDBMoved   = Kind{Value: "read_only_db_moved"}
	KindReadOnlyCantInit  = Kind{Value: "read_only_cant_init"}
	KindReadOnlyDirectory = Kind{Value: "read_only_directory"}

	KindAbortRollback = Kind{Value: "abort_rollback"}

	KindConstraintCheck      = Kind{Value: "constraint_check"}
	KindConstraintCommitHook = Kind{Value: "constraint_commit_hook"}
	KindConstraintForeignKey = Kind{Value: "constraint_foreign_key"}
	KindConstraintFunction   = Kind{Value: "constraint_function"}
	KindConstraintNotNull    = Kind{Value: "constraint_not_null"}
	KindConstraintPrimaryKey = Kind{Value: "constraint_primary_key"}
	KindConstraintTrigger    = Kind{Value: "constraint_trigger"}
	KindConstraintUnique     = Kind{Value: "constraint_unique"}
	KindConstraintVTab       = Kind{Value: "constraint_vtab"}
	KindConstraintRowID      = Kind{Value: "constraint_row_id"}
	KindConstraintPinned     = Kind{Value: "constraint_pinned"}
	KindConstraintDatatype   = Kind{Value: "constraint_datatype"}

	KindNoticeRecoverWAL      = Kind{Value: "notice_recover_wal"}
	KindNoticeRecoverRollback = Kind{Value: "notice_recover_rollback"}
	KindNoticeRBU             = Kind{Value: "notice_rbu"}

	KindWarningAutoIndex = Kind{Value: "warning_auto_index"}

	KindAuthUser = Kind{Value: "auth_user"}
)

// KindUnsupportedType is raised by the driver itself, before any native
// call, when a bind or column request uses a Go type outside the supported
// set. It has no native result code.
var KindUnsupportedType = Kind{Value: "unsupported_type"}

// kindByCode is the static lookup table from native result codes to kinds,
// covering every primary and extended code the engine defines.
var kindByCode = map[int]Kind{
	codeError:      KindError,
	codeInternal:   KindInternal,
	codePerm:       KindPerm,
	codeAbort:      KindAbort,
	codeBusy:       KindBusy,
	codeLocked:     KindLocked,
	codeNoMem:      KindNoMem,
	codeReadOnly:   KindReadOnly,
	codeInterrupt:  KindInterrupt,
	codeIOErr:      KindIOErr,
	codeCorrupt:    KindCorrupt,
	codeNotFound:   KindNotFound,
	codeFull:       KindFull,
	codeCantOpen:   KindCantOpen,
	codeProtocol:   KindProtocol,
	codeEmpty:      KindEmpty,
	codeSchema:     KindSchema,
	codeTooBig:     KindTooBig,
	codeConstraint: KindConstraint,
	codeMismatch:   KindMismatch,
	codeMisuse:     KindMisuse,
	codeNoLFS:      KindNoLFS,
	codeAuth:       KindAuth,
	codeFormat:     KindFormat,
	codeRange:      KindRange,
	codeNotADB:     KindNotADB,
	codeNotice:     KindNotice,
	codeWarning:    KindWarning,

	codeErrorMissingCollSeq: KindErrorMissingCollSeq,
	codeErrorRetry:          KindErrorRetry,
	codeErrorSnapshot:       KindErrorSnapshot,

	codeIOErrRead:              KindIOErrRead,
	codeIOErrShortRead:         KindIOErrShortRead,
	codeIOErrWrite:             KindIOErrWrite,
	codeIOErrFsync:             KindIOErrFsync,
	codeIOErrDirFsync:          KindIOErrDirFsync,
	codeIOErrTruncate:          KindIOErrTruncate,
	codeIOErrFstat:             KindIOErrFstat,
	codeIOErrUnlock:            KindIOErrUnlock,
	codeIOErrRDLock:            KindIOErrRDLock,
	codeIOErrDelete:            KindIOErrDelete,
	codeIOErrBlocked:           KindIOErrBlocked,
	codeIOErrNoMem:             KindIOErrNoMem,
	codeIOErrAccess:            KindIOErrAccess,
	codeIOErrCheckReservedLock: KindIOErrCheckReservedLock,
	codeIOErrLock:              KindIOErrLock,
	codeIOErrClose:             KindIOErrClose,
	codeIOErrDirClose:          KindIOErrDirClose,
	codeIOErrSHMOpen:           KindIOErrSHMOpen,
	codeIOErrSHMSize:           KindIOErrSHMSize,
	codeIOErrSHMLock:           KindIOErrSHMLock,
	codeIOErrSHMMap:            KindIOErrSHMMap,
	codeIOErrSeek:              KindIOErrSeek,
	codeIOErrDeleteNoEnt:       KindIOErrDeleteNoEnt,
	codeIOErrMMap:              KindIOErrMMap,
	codeIOErrGetTempPath:       KindIOErrGetTempPath,
	codeIOErrConvPath:          KindIOErrConvPath,
	codeIOErrVNode:             KindIOErrVNode,
	codeIOErrAuth:              KindIOErrAuth,
	codeIOErrBeginAtomic:       KindIOErrBeginAtomic,
	codeIOErrCommitAtomic:      KindIOErrCommitAtomic,
	codeIOErrRollbackAtomic:    KindIOErrRollbackAtomic,
	codeIOErrData:              KindIOErrData,
	codeIOErrCorruptFS:         KindIOErrCorruptFS,
	codeIOErrInPage:            KindIOErrInPage,

	codeLockedSharedCache: KindLockedSharedCache,
	codeLockedVTab:        KindLockedVTab,

	codeBusyRecovery: KindBusyRecovery,
	codeBusySnapshot: KindBusySnapshot,
	codeBusyTimeout:  KindBusyTimeout,

	codeCantOpenNoTempDir: KindCantOpenNoTempDir,
	codeCantOpenIsDir:     KindCantOpenIsDir,
	codeCantOpenFullPath:  KindCantOpenFullPath,
	codeCantOpenConvPath:  KindCantOpenConvPath,
	codeCantOpenDirtyWAL:  KindCantOpenDirtyWAL,
	codeCantOpenSymlink:   KindCantOpenSymlink,

	codeCorruptVTab:     KindCorruptVTab,
	codeCorruptSequence: KindCorruptSequence,
	codeCorruptIndex:    KindCorruptIndex,

	codeReadOnlyRecovery:  KindReadOnlyRecovery,
	codeReadOnlyCantLock:  KindReadOnlyCantLock,
	codeReadOnlyRollback:  KindReadOnlyRollback,
	codeReadOnlyDBMoved:   KindReadOnlyDBMoved,
	codeReadOnlyCantInit:  KindReadOnlyCantInit,
	codeReadOnlyDirectory: KindReadOnlyDirectory,

	codeAbortRollback: KindAbortRollback,

	codeConstraintCheck:      KindConstraintCheck,
	codeConstraintCommitHook: KindConstraintCommitHook,
	codeConstraintForeignKey: KindConstraintForeignKey,
	codeConstraintFunction:   KindConstraintFunction,
	codeConstraintNotNull:    KindConstraintNotNull,
	codeConstraintPrimaryKey: KindConstraintPrimaryKey,
	codeConstraintTrigger:    KindConstraintTrigger,
	codeConstraintUnique:     KindConstraintUnique,
	codeConstraintVTab:       KindConstraintVTab,
	codeConstraintRowID:      KindConstraintRowID,
	codeConstraintPinned:     KindConstraintPinned,
	codeConstraintDatatype:   KindConstraintDatatype,

	codeNoticeRecoverWAL:      KindNoticeRecoverWAL,
	codeNoticeRecoverRollback: KindNoticeRecoverRollback,
	codeNoticeRBU:             KindNoticeRBU,

	codeWarningAutoIndex: KindWarningAutoIndex,

	codeAuthUser: KindAuthUser,
}

// kindForCode maps a native result code to its Kind. A code outside the
// engine's defined set means the binding layer itself is broken, so this
// panics instead of returning a typed error.
func kindForCode(code int) Kind {
	if kind, ok := kindByCode[code]; ok {
		return kind
	}
	panic(fmt.Sprintf("slite: unrecognized sqlite result code %d", code))
}

// Error is a typed failure from the driver. Code is the native result code
// (extended when extended result codes are enabled on the connection);
// Message is the engine's human-readable text captured at failure time.
type Error struct {
	Kind    Kind
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sqlite: %s (%d)", e.Kind.Value, e.Code)
	}
	return fmt.Sprintf("sqlite: %s (%d): %s", e.Kind.Value, e.Code, e.Message)
}

// Is reports whether target is an *Error of the same Kind, so callers can
// branch with errors.Is on a prototype like &Error{Kind: KindBusy}.
func (e *Error) Is(target error) bool {
	var te *Error
	if !errors.As(target, &te) {
		return false
	}
	return e.Kind == te.Kind
}

// newError builds an Error for the given native code.
func newError(code int, message string) *Error {
	return &Error{
		Kind:    kindForCode(code),
		Code:    code,
		Message: message,
	}
}

// errUnsupportedType builds the driver-level binding error for a Go value
// outside the supported set. No native call has been made when it is raised.
func errUnsupportedType(value any) *Error {
	return &Error{
		Kind:    KindUnsupportedType,
		Code:    -1,
		Message: fmt.Sprintf("unsupported Go type %T", value),
	}
}

// IsUniqueViolation reports whether err represents a uniqueness-constraint
// violation, the one constraint class calling code commonly branches on.
func IsUniqueViolation(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindConstraintUnique
}
