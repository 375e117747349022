// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package scanner

import (
	"io"
	"unicode/utf8"
)

// source is a buffered byte reader that tracks line, column and absolute
// byte offset as it advances, one rune at a time. It underlies Scanner the
// same way it underlies the Go compiler's own internal lexer: nextch keeps
// s.ch current, start/stop bracket the bytes belonging to the token being
// scanned, and Segment returns them.
type source struct {
	in   io.Reader
	errh func(line, col uint, msg string)

	buf      []byte
	ioErr    error
	b, r, e  int // buffer offsets: begin-of-token, read, end-of-valid-data
	line, col uint
	offset    int // absolute byte offset of s.ch
	ch        rune
	chw       int // width of ch in bytes
}

const sourceBufLen = 4 << 10

func (s *source) init(in io.Reader, errh func(line, col uint, msg string)) {
	s.in = in
	s.errh = errh

	if cap(s.buf) == 0 {
		s.buf = make([]byte, sourceBufLen)
	}
	s.buf[0] = utf8.RuneSelf // sentinel so isLetter etc. never sees buf[-1]
	s.b, s.r, s.e = 0, 0, 0
	s.line, s.col = 1, 0
	s.offset = -1
	s.ch = ' '
	s.chw = 0
	s.ioErr = nil
}

func (s *source) error(msg string) {
	line, col := s.line, s.col
	s.errh(line, col, msg)
}

// start marks s.ch as the first byte of a new token.
func (s *source) start() { s.b = s.r - s.chw }

// stop marks the end of the current token (exclusive).
func (s *source) stop() { s.b = -1 }

// Segment returns the bytes of the token started by start, up to but not
// including s.ch.
func (s *source) Segment() []byte {
	if s.b < 0 {
		return nil
	}
	return s.buf[s.b : s.r-s.chw]
}

func (s *source) pos() (line, col uint) { return s.line, s.col }

// rewind un-reads the most recently read rune.
func (s *source) rewind() {
	s.col -= uint(s.chw)
	s.r -= s.chw
	s.offset -= s.chw
	s.ch = rune(s.buf[s.r])
	if s.ch >= utf8.RuneSelf {
		s.ch, s.chw = utf8.DecodeRune(s.buf[s.r:s.e])
	} else {
		s.chw = 1
	}
}

// fill reads more bytes into s.buf, compacting the unread tail first.
func (s *source) fill() {
	if s.b > 0 {
		copy(s.buf, s.buf[s.b:s.e])
		s.e -= s.b
		s.r -= s.b
		s.b = 0
	}

	for i := 0; i < 10; i++ {
		if s.e == len(s.buf) {
			buf := make([]byte, len(s.buf)*2)
			copy(buf, s.buf)
			s.buf = buf
		}
		n, err := s.in.Read(s.buf[s.e : len(s.buf)-1])
		if n < 0 {
			panic("negative read")
		}
		if n > 0 || err != nil {
			s.e += n
			s.buf[s.e] = utf8.RuneSelf
			if err != nil {
				s.ioErr = err
			}
			return
		}
	}

	s.buf[s.e] = utf8.RuneSelf
	s.ioErr = io.ErrNoProgress
}

func (s *source) nextch() {
redo:
	s.col += uint(s.chw)
	if s.ch == '\n' {
		s.line++
		s.col = 0
	}

	// fast path: ascii
	if s.r+1 >= s.e {
		if s.ioErr != nil {
			s.ch, s.chw = -1, 0
			return
		}
		s.fill()
	}

	if b := s.buf[s.r]; b < utf8.RuneSelf {
		s.r++
		s.offset++
		s.ch, s.chw = rune(b), 1
		if s.ch == 0 {
			s.error("invalid NUL character")
			goto redo
		}
		return
	}

	// uncommon case: not ascii, or not enough bytes buffered
	for s.r+utf8.UTFMax > s.e && !utf8.FullRune(s.buf[s.r:s.e]) && s.ioErr == nil {
		s.fill()
	}
	if s.r >= s.e {
		s.ch, s.chw = -1, 0
		return
	}
	s.ch, s.chw = utf8.DecodeRune(s.buf[s.r:s.e])
	s.r += s.chw
	s.offset += s.chw
	if s.ch == utf8.RuneError && s.chw == 1 {
		s.error("invalid UTF-8 encoding")
		goto redo
	}
}
