package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Input detection. Archives are recognized by content, documents by extension
// plus a cheap probe for the document root element. Probing has to survive
// BOM-marked UTF-16/32 sources, so the sniffed head is decoded before the
// probe runs.

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

const probeSize = 4096

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// detectUTF looks at the BOM. UTF-32 LE shares its first two bytes with
// UTF-16 LE, check the longer mark first.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	case isUTF8BOM3(buf):
		return encUTF8
	}
	return encUnknown
}

// selectReader wraps the reader with the decoder matching the detected BOM.
// XML declaration driven encodings are handled downstream by the parser.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUTF16BigEndian:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder().Reader(r)
	case encUTF16LittleEndian:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Reader(r)
	case encUTF32BigEndian:
		return utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewDecoder().Reader(r)
	case encUTF32LittleEndian:
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewDecoder().Reader(r)
	case encUTF8:
		return unicode.UTF8BOM.NewDecoder().Reader(r)
	default:
		return r
	}
}

// isArchiveFile reports whether the file at path is a zip archive.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}

	kind, err := filetype.Match(head[:n])
	if err != nil {
		return false, err
	}
	return kind == matchers.TypeZip, nil
}

// isDocumentFile reports whether the file at path looks like a serialized
// document tree and what BOM it carries.
func isDocumentFile(path string) (bool, srcEncoding, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xml") {
		return false, encUnknown, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()

	return probeDocument(f)
}

// isDocumentInArchive is isDocumentFile for a zip entry.
func isDocumentInArchive(f *zip.File) (bool, srcEncoding, error) {
	if !strings.EqualFold(filepath.Ext(f.FileHeader.Name), ".xml") {
		return false, encUnknown, nil
	}

	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	return probeDocument(r)
}

// probeDocument reads the head of the stream and looks for the document root
// element in decoded text.
func probeDocument(r io.Reader) (bool, srcEncoding, error) {
	head := make([]byte, probeSize)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, encUnknown, err
	}
	head = head[:n]

	enc := detectUTF(head)
	decoded, err := io.ReadAll(selectReader(bytes.NewReader(head), enc))
	if err != nil {
		// truncated multibyte sequence at the probe boundary is not an error
		decoded = head
	}
	return strings.Contains(string(decoded), "<document"), enc, nil
}
