// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lognum

import (
	"fmt"
	"io"
	"strings"
)

var _ fmt.Scanner = (*LogValue)(nil) // *LogValue must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the verbs 'e', 'E', 'f', 'F', 'g', 'G', 'l', 's'
// and 'v', and any of the formats accepted by Parse, including ±Inf and NaN.
func (z *LogValue) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'e', 'E', 'f', 'F', 'g', 'G', 'l', 's', 'v':
	default:
		return fmt.Errorf("lognum: invalid verb %%%c for LogValue", ch)
	}
	s.SkipSpace()
	tok, err := scanToken(byteReader{s})
	if err != nil {
		return err
	}
	x, err := Parse(tok)
	if err != nil {
		return err
	}
	*z = x
	return nil
}

// scanToken reads the longest prefix of r made of characters that may appear
// in a number. The first character that does not belong is unread.
func scanToken(r io.ByteScanner) (string, error) {
	var sb strings.Builder
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if !isNumberByte(c) {
			if err := r.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		sb.WriteByte(c)
	}
	if sb.Len() == 0 {
		return "", io.ErrUnexpectedEOF
	}
	return sb.String(), nil
}

// isNumberByte reports whether c may appear in a number, or in the words
// "inf", "infinity" and "nan".
func isNumberByte(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case c == '+' || c == '-' || c == '.':
		return true
	}
	switch c | 0x20 { // lower case
	case 'e', 'i', 'n', 'f', 't', 'y', 'a':
		return true
	}
	return false
}
