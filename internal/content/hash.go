package content

import (
	"encoding/hex"
	"io"

	"lukechampine.com/blake3"
)

// HashAlgorithm names the digest produced by HashFile.
const HashAlgorithm = "blake3"

// hashBufferSize bounds memory per hashed file regardless of its size.
const hashBufferSize = 8 * 1024

// HashFile stream-hashes rel with BLAKE3 and returns the hex digest.
func (s *Source) HashFile(rel string) (string, error) {
	f, err := s.Open(rel)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return HashReader(f)
}

// HashReader stream-hashes r with a fixed-size buffer.
func HashReader(r io.Reader) (string, error) {
	h := blake3.New(32, nil)
	buf := make([]byte, hashBufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashBytes returns the hex BLAKE3 digest of data.
func HashBytes(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
