package badger

import (
	"github.com/campusgrid/campusgrid/core"
	"github.com/campusgrid/campusgrid/storage"
)

// Key prefixes for different data types
const (
	instituteDocPrefix = "catdoc"
)

// makeInstituteKey generates a key for an institute document by id.
// Format: prefix:varint(id)
func makeInstituteKey(id core.ID) []byte {
	prefix := instituteDocPrefix + ":"
	idBytes := storage.MarshalID(id)
	buf := make([]byte, len(prefix)+len(idBytes))
	offset := copy(buf, prefix)
	copy(buf[offset:], idBytes)
	return buf
}

// instituteScanPrefix is the prefix shared by every institute document key,
// used for full scans.
func instituteScanPrefix() []byte {
	return []byte(instituteDocPrefix + ":")
}
