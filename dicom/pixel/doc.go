// Package pixel assembles native DICOM pixel data into typed sample buffers.
//
// The stage watches a parsed element stream for the image description
// attributes (geometry, sample format, signedness, padding, rescale,
// window/level) and accumulates the pixel data bytes, whether they arrive as
// a single native value field or as encapsulated fragments. After the full
// traversal the collected description materializes into one of the typed
// buffer forms with per-pixel access.
//
// Encapsulated codec payloads (JPEG, JPEG 2000, RLE, ...) are assembled but
// not decompressed; callers identify them via the transfer syntax's
// Encapsulated flag and decode with an external codec.
//
// # Basic Usage
//
//	p := dicom.NewParserBuilder().Dictionary(tag.Standard).Build(file)
//	info, err := pixel.Collect(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	buf, err := pixel.Load(info)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	switch s := buf.(type) {
//	case *pixel.SliceU16:
//	    px, _ := s.GetPixel(0, 0)
//	    _ = px
//	}
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part03.html#sect_C.7.6.3
package pixel
