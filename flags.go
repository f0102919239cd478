package ramfs

// OpenFlags is the bitfield spec.md §4.3 passes to open: a two-bit
// access mode plus auxiliary bits.
type OpenFlags uint32

const (
	// ReadOnly, WriteOnly, and ReadWrite occupy the low two bits of
	// OpenFlags (its "mode"). ReadOnly is the zero value, matching
	// O_RDONLY's conventional value of 0 in Unix flag sets.
	ReadOnly  OpenFlags = 0
	WriteOnly OpenFlags = 1
	ReadWrite OpenFlags = 2

	modeMask OpenFlags = 0x3

	// Directory requests a directory handle; valid only combined with
	// ReadOnly (spec.md §4.3 step 1).
	Directory OpenFlags = 1 << 2
	// Append seeds the cursor at logical_size instead of 0.
	Append OpenFlags = 1 << 3
	// Truncate resets the node to a fresh, empty buffer before the
	// cursor is computed.
	Truncate OpenFlags = 1 << 4
)

// Mode returns the access-mode bits of f, discarding the auxiliary bits.
func (f OpenFlags) Mode() OpenFlags { return f & modeMask }

// Writable reports whether f's mode permits writing.
func (f OpenFlags) Writable() bool {
	m := f.Mode()
	return m == WriteOnly || m == ReadWrite
}

// Has reports whether every bit set in want is also set in f.
func (f OpenFlags) Has(want OpenFlags) bool { return f&want == want }

// Whence selects the reference point for Seek, per spec.md §4.3.
type Whence int

const (
	SeekSet Whence = iota
	SeekCurrent
	SeekEnd
)

// FcntlCmd enumerates the commands spec.md §4.3's fcntl recognizes.
// Only GetFlags has an effect; the others are accepted and return 0,
// matching existing behavior the spec documents rather than rejecting.
type FcntlCmd int

const (
	FcntlGetFlags FcntlCmd = iota
	FcntlSetFlags
	FcntlGetFDFlags
	FcntlSetFDFlags
)
