package ole2

import "encoding/binary"

// sectorSource reads whole sectors by SecID. Both the long-chain (SAT) and
// short-chain (SSAT) tables are built by walking sectors through it.
type sectorSource interface {
	readSector(id SecID) ([]byte, error)
}

// allocationTable is the shared shape of SAT and SSAT: an ordered sequence
// of SecIDs indexed by source SecID, yielding the next SecID in that
// sector's chain.
type allocationTable struct {
	entries []SecID
}

// next returns the SecID following s in its chain. Queries past the end of
// the table are malformed per spec: any real chain is expected to terminate
// in SecIDEndOfChain before running off the table.
func (t *allocationTable) next(s SecID) (SecID, error) {
	if s < 0 || int(s) >= len(t.entries) {
		return 0, ErrMalformedChain
	}
	return t.entries[s], nil
}

// buildMSAT reconstructs the Master Sector Allocation Table: the header's
// 109 embedded entries, followed by the msatFirstSecID chain where each
// sector contributes (sectorSize/4)-1 SAT SecIDs plus one continuation
// SecID, truncated to sectorsInSAT entries (§4.C).
func buildMSAT(h *Header, src sectorSource) ([]SecID, error) {
	msat := make([]SecID, 0, len(h.MSATHead)+h.SectorsInMSAT*(h.SectorSize/4))
	msat = append(msat, h.MSATHead[:]...)

	perSector := h.SectorSize/4 - 1
	cur := h.MSATFirstSecID
	for i := 0; i < h.SectorsInMSAT && cur != SecIDEndOfChain; i++ {
		sec, err := src.readSector(cur)
		if err != nil {
			return nil, err
		}
		for j := 0; j < perSector; j++ {
			msat = append(msat, readSecID(sec, j*4))
		}
		cur = readSecID(sec, perSector*4)
	}

	if len(msat) > h.SectorsInSAT {
		msat = msat[:h.SectorsInSAT]
	}
	return msat, nil
}

// buildSAT reads every sector named by the MSAT and appends its
// sectorSize/4 SecID entries (§4.C).
func buildSAT(h *Header, msat []SecID, src sectorSource) (*allocationTable, error) {
	perSector := h.SectorSize / 4
	entries := make([]SecID, 0, len(msat)*perSector)
	for _, s := range msat {
		sec, err := src.readSector(s)
		if err != nil {
			return nil, err
		}
		for j := 0; j < perSector; j++ {
			entries = append(entries, readSecID(sec, j*4))
		}
	}
	return &allocationTable{entries: entries}, nil
}

// buildSSAT follows the short-sector allocation table's own chain through
// the SAT, starting at ssatFirstSecID, for sectorsInSSAT sectors (§4.C).
func buildSSAT(h *Header, sat *allocationTable, src sectorSource) (*allocationTable, error) {
	perSector := h.SectorSize / 4
	entries := make([]SecID, 0, h.SectorsInSSAT*perSector)

	cur := h.SSATFirstSecID
	for i := 0; i < h.SectorsInSSAT && cur != SecIDEndOfChain; i++ {
		sec, err := src.readSector(cur)
		if err != nil {
			return nil, err
		}
		for j := 0; j < perSector; j++ {
			entries = append(entries, readSecID(sec, j*4))
		}
		var err2 error
		cur, err2 = sat.next(cur)
		if err2 != nil {
			return nil, err2
		}
	}

	return &allocationTable{entries: entries}, nil
}

func readSecID(b []byte, off int) SecID {
	return SecID(int32(binary.LittleEndian.Uint32(b[off:])))
}

// readChain concatenates every sector in the long chain starting at start,
// following sat.next until SecIDEndOfChain. Used for streams whose total
// byte length isn't known up front (the directory stream itself).
func readChain(sat *allocationTable, src sectorSource, start SecID) ([]byte, error) {
	var out []byte
	cur := start
	seen := 0
	for cur != SecIDEndOfChain {
		if cur < 0 || seen > len(sat.entries) {
			return nil, ErrMalformedChain
		}
		sec, err := src.readSector(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, sec...)
		cur, err = sat.next(cur)
		if err != nil {
			return nil, err
		}
		seen++
	}
	return out, nil
}
