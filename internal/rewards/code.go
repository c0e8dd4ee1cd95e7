package rewards

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// CodeGenerator produces redemption codes
type CodeGenerator func() (string, error)

// NewCode returns a random code such as IMP-7KQ2-MZ4D
func NewCode() (string, error) {
	n := CodeGroupLength * CodeGroups
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf(ErrMsgGenerateCode, err)
	}

	var b strings.Builder
	b.WriteString(CodePrefix)
	for i, v := range buf {
		if i%CodeGroupLength == 0 {
			b.WriteByte('-')
		}
		// len(CodeAlphabet) divides 256
		b.WriteByte(CodeAlphabet[int(v)%len(CodeAlphabet)])
	}
	return b.String(), nil
}
