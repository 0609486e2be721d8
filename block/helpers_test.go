package block

import "github.com/bitwiser-io/chcodec/endian"

func leEngine() endian.EndianEngine {
	return endian.GetLittleEndianEngine()
}
