package slite

// OpenFlags control how a database file is opened. Combine with bitwise OR
// and pass to Open. If neither OpenReadOnly nor OpenReadWrite is set,
// OpenReadWrite is implied.
//
// https://www.sqlite.org/c3ref/c_open_autoproxy.html
type OpenFlags int

const (
	OpenReadOnly      OpenFlags = 0x00000001
	OpenReadWrite     OpenFlags = 0x00000002
	OpenCreate        OpenFlags = 0x00000004
	OpenDeleteOnClose OpenFlags = 0x00000008
	OpenExclusive     OpenFlags = 0x00000010
	OpenURI           OpenFlags = 0x00000040
	OpenMemory        OpenFlags = 0x00000080
	OpenNoMutex       OpenFlags = 0x00008000
	OpenFullMutex     OpenFlags = 0x00010000
	OpenSharedCache   OpenFlags = 0x00020000
	OpenPrivateCache  OpenFlags = 0x00040000
	OpenWAL           OpenFlags = 0x00080000
	OpenNoFollow      OpenFlags = 0x01000000
	OpenExResCode     OpenFlags = 0x02000000
)

// Primary result codes.
//
// https://www.sqlite.org/rescode.html
const (
	codeOK         = 0
	codeError      = 1
	codeInternal   = 2
	codePerm       = 3
	codeAbort      = 4
	codeBusy       = 5
	codeLocked     = 6
	codeNoMem      = 7
	codeReadOnly   = 8
	codeInterrupt  = 9
	codeIOErr      = 10
	codeCorrupt    = 11
	codeNotFound   = 12
	codeFull       = 13
	codeCantOpen   = 14
	codeProtocol   = 15
	codeEmpty      = 16
	codeSchema     = 17
	codeTooBig     = 18
	codeConstraint = 19
	codeMismatch   = 20
	codeMisuse     = 21
	codeNoLFS      = 22
	codeAuth       = 23
	codeFormat     = 24
	codeRange      = 25
	codeNotADB     = 26
	codeNotice     = 27
	codeWarning    = 28
	codeRow        = 100
	codeDone       = 101
)

// Extended result codes. Each refines a primary code with a cause; the
// primary code is recoverable as code & 0xff.
//
// https://www.sqlite.org/rescode.html#extrc
const (
	codeErrorMissingCollSeq = codeError | 1<<8
	codeErrorRetry          = codeError | 2<<8
	codeErrorSnapshot       = codeError | 3<<8

	codeIOErrRead              = codeIOErr | 1<<8
	codeIOErrShortRead         = codeIOErr | 2<<8
	codeIOErrWrite             = codeIOErr | 3<<8
	codeIOErrFsync             = codeIOErr | 4<<8
	codeIOErrDirFsync          = codeIOErr | 5<<8
	codeIOErrTruncate          = codeIOErr | 6<<8
	codeIOErrFstat             = codeIOErr | 7<<8
	codeIOErrUnlock            = codeIOErr | 8<<8
	codeIOErrRDLock            = codeIOErr | 9<<8
	codeIOErrDelete            = codeIOErr | 10<<8
	codeIOErrBlocked           = codeIOErr | 11<<8
	codeIOErrNoMem             = codeIOErr | 12<<8
	codeIOErrAccess            = codeIOErr | 13<<8
	codeIOErrCheckReservedLock = codeIOErr | 14<<8
	codeIOErrLock              = codeIOErr | 15<<8
	codeIOErrClose             = codeIOErr | 16<<8
	codeIOErrDirClose          = codeIOErr | 17<<8
	codeIOErrSHMOpen           = codeIOErr | 18<<8
	codeIOErrSHMSize           = codeIOErr | 19<<8
	codeIOErrSHMLock           = codeIOErr | 20<<8
	codeIOErrSHMMap            = codeIOErr | 21<<8
	codeIOErrSeek              = codeIOErr | 22<<8
	codeIOErrDeleteNoEnt       = codeIOErr | 23<<8
	codeIOErrMMap              = codeIOErr | 24<<8
	codeIOErrGetTempPath       = codeIOErr | 25<<8
	codeIOErrConvPath          = codeIOErr | 26<<8
	codeIOErrVNode             = codeIOErr | 27<<8
	codeIOErrAuth              = codeIOErr | 28<<8
	codeIOErrBeginAtomic       = codeIOErr | 29<<8
	codeIOErrCommitAtomic      = codeIOErr | 30<<8
	codeIOErrRollbackAtomic    = codeIOErr | 31<<8
	codeIOErrData              = codeIOErr | 32<<8
	codeIOErrCorruptFS         = codeIOErr | 33<<8
	codeIOErrInPage            = codeIOErr | 34<<8

	codeLockedSharedCache = codeLocked | 1<<8
	codeLockedVTab        = codeLocked | 2<<8

	codeBusyRecovery = codeBusy | 1<<8
	codeBusySnapshot = codeBusy | 2<<8
	codeBusyTimeout  = codeBusy | 3<<8

	codeCantOpenNoTempDir = codeCantOpen | 1<<8
	codeCantOpenIsDir     = codeCantOpen | 2<<8
	codeCantOpenFullPath  = codeCantOpen | 3<<8
	codeCantOpenConvPath  = codeCantOpen | 4<<8
	codeCantOpenDirtyWAL  = codeCantOpen | 5<<8
	codeCantOpenSymlink   = codeCantOpen | 6<<8

	codeCorruptVTab     = codeCorrupt | 1<<8
	codeCorruptSequence = codeCorrupt | 2<<8
	codeCorruptIndex    = codeCorrupt | 3<<8

	codeReadOnlyRecovery  = codeReadOnly | 1<<8
	codeReadOnlyCantLock  = codeReadOnly | 2<<8
	codeReadOnlyRollback  = codeReadOnly | 3<<8
	codeReadOnlyDBMoved   = codeReadOnly | 4<<8
	codeReadOnlyCantInit  = codeReadOnly | 5<<8
	codeReadOnlyDirectory = codeReadOnly | 6<<8

	codeAbortRollback = codeAbort | 2<<8

	codeConstraintCheck      = codeConstraint | 1<<8
	codeConstraintCommitHook = codeConstraint | 2<<8
	codeConstraintForeignKey = codeConstraint | 3<<8
	codeConstraintFunction   = codeConstraint | 4<<8
	codeConstraintNotNull    = codeConstraint | 5<<8
	codeConstraintPrimaryKey = codeConstraint | 6<<8
	codeConstraintTrigger    = codeConstraint | 7<<8
	codeConstraintUnique     = codeConstraint | 8<<8
	codeConstraintVTab       = codeConstraint | 9<<8
	codeConstraintRowID      = codeConstraint | 10<<8
	codeConstraintPinned     = codeConstraint | 11<<8
	codeConstraintDatatype   = codeConstraint | 12<<8

	codeNoticeRecoverWAL      = codeNotice | 1<<8
	codeNoticeRecoverRollback = codeNotice | 2<<8
	codeNoticeRBU             = codeNotice | 3<<8

	codeWarningAutoIndex = codeWarning | 1<<8

	codeAuthUser = codeAuth | 1<<8
)
