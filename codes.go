package xls

// BIFF8 record codes this core recognizes. Any other code is skipped
// silently at both the global and per-sheet dispatch level (§4.F, §4.J).
const (
	codeFormula    = 0x0006
	codeEOF        = 0x000A
	codeCodepage   = 0x0042
	codeDatemode   = 0x0022
	codeContinue   = 0x003C
	codeFilepass   = 0x002F
	codeNumber     = 0x0203
	codeLabel      = 0x0204
	codeString     = 0x0207
	codeBoundSheet = 0x0085
	codeRK         = 0x007E
	codeRK2        = 0x027E
	codeMulRK      = 0x00BD
	codeSST        = 0x00FC
	codeLabelSST   = 0x00FD
	codeBOF        = 0x0809
	codeShrFmla    = 0x04BC
)

// biffVersion8 is the only BOF version word this core accepts.
const biffVersion8 = 0x0600
