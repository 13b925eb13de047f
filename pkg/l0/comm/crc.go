package comm

const (
	crcInit byte = 0xff
	crcPoly byte = 0xd5
)

// CRC8 calculates the checksum used in frames.
// It's computed bit by bit and doesn't match any table based CRC-8 variant.
func CRC8(data []byte) byte {
	crc := crcInit
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x01 != 0 {
				crc = (crc >> 1) ^ crcPoly
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}
