package uid

// Record is a registered UID with its identifier and display name.
type Record struct {
	UID   UID
	Ident string
	Name  string
}

// Common SOP class UIDs, for resolving dataset identifiers to names.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
var sopClassRecords = []Record{
	{UID: MustParse("1.2.840.10008.1.1"), Ident: "Verification", Name: "Verification SOP Class"},
	{UID: MustParse("1.2.840.10008.5.1.4.1.1.1"), Ident: "ComputedRadiographyImageStorage", Name: "Computed Radiography Image Storage"},
	{UID: MustParse("1.2.840.10008.5.1.4.1.1.2"), Ident: "CTImageStorage", Name: "CT Image Storage"},
	{UID: MustParse("1.2.840.10008.5.1.4.1.1.4"), Ident: "MRImageStorage", Name: "MR Image Storage"},
	{UID: MustParse("1.2.840.10008.5.1.4.1.1.6.1"), Ident: "UltrasoundImageStorage", Name: "Ultrasound Image Storage"},
	{UID: MustParse("1.2.840.10008.5.1.4.1.1.7"), Ident: "SecondaryCaptureImageStorage", Name: "Secondary Capture Image Storage"},
	{UID: MustParse("1.2.840.10008.5.1.4.1.1.20"), Ident: "NuclearMedicineImageStorage", Name: "Nuclear Medicine Image Storage"},
	{UID: MustParse("1.2.840.10008.5.1.4.1.1.128"), Ident: "PositronEmissionTomographyImageStorage", Name: "Positron Emission Tomography Image Storage"},
	{UID: MustParse("1.2.840.10008.5.1.4.1.1.481.1"), Ident: "RTImageStorage", Name: "RT Image Storage"},
	{UID: MustParse("1.2.840.10008.5.1.4.1.1.481.3"), Ident: "RTStructureSetStorage", Name: "RT Structure Set Storage"},
}

var uidByValue = func() map[string]*Record {
	m := make(map[string]*Record, len(sopClassRecords)+len(registered))
	for i := range sopClassRecords {
		m[sopClassRecords[i].UID.String()] = &sopClassRecords[i]
	}
	for _, ts := range registered {
		m[ts.UID.String()] = &Record{UID: ts.UID, Ident: ts.Ident, Name: ts.Name}
	}
	return m
}()

var uidByIdent = func() map[string]*Record {
	m := make(map[string]*Record, len(uidByValue))
	for _, rec := range uidByValue {
		m[rec.Ident] = rec
	}
	return m
}()

// LookupUID finds a registered UID record by its value, covering the
// transfer syntaxes and common SOP classes. Returns nil when unknown.
func LookupUID(uidValue string) *Record {
	return uidByValue[uidValue]
}

// LookupUIDByIdent finds a registered UID record by its identifier.
// Returns nil when unknown.
func LookupUIDByIdent(ident string) *Record {
	return uidByIdent[ident]
}
