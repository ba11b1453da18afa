package regexdfa

// Golden ratio multiplier, used to fold ordered sequences into one hash.
const phiC64 = uint64(0x9e3779b97f4a7c15)

func mix(key int) uint64 {
	return uint64(mix32(key))
}

// mix32 is the 32-bit finalization step of MurmurHash3.
func mix32(v int) uint32 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}

// mixSeq hashes an ordered sequence of ints; unlike a sum of mixes it depends on the order.
func mixSeq(h uint64, values ...int) uint64 {
	for _, v := range values {
		h = (h ^ mix(v)) * phiC64
	}
	return h
}
