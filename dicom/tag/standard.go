package tag

import (
	"github.com/neandrake/medicom-go/dicom/vr"
)

// Standard is the full data dictionary compiled from Part 6 of the standard.
// It enables implicit-VR resolution and human-friendly names for the tags it
// covers. Parsing never requires it; the Minimal dictionary is always
// sufficient for walking a dataset structurally.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
var Standard = NewDictionary(standardInfos)

var standardInfos = []Info{
	// File Meta Information (Group 0x0002)
	{Tag: New(0x0002, 0x0000), VRs: []vr.VR{vr.UnsignedLong}, Name: "File Meta Information Group Length", Keyword: "FileMetaInformationGroupLength", VM: "1"},
	{Tag: New(0x0002, 0x0001), VRs: []vr.VR{vr.OtherByte}, Name: "File Meta Information Version", Keyword: "FileMetaInformationVersion", VM: "1"},
	{Tag: New(0x0002, 0x0002), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Class UID", Keyword: "MediaStorageSOPClassUID", VM: "1"},
	{Tag: New(0x0002, 0x0003), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Instance UID", Keyword: "MediaStorageSOPInstanceUID", VM: "1"},
	{Tag: New(0x0002, 0x0010), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Transfer Syntax UID", Keyword: "TransferSyntaxUID", VM: "1"},
	{Tag: New(0x0002, 0x0012), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Implementation Class UID", Keyword: "ImplementationClassUID", VM: "1"},
	{Tag: New(0x0002, 0x0013), VRs: []vr.VR{vr.ShortString}, Name: "Implementation Version Name", Keyword: "ImplementationVersionName", VM: "1"},
	{Tag: New(0x0002, 0x0016), VRs: []vr.VR{vr.ApplicationEntity}, Name: "Source Application Entity Title", Keyword: "SourceApplicationEntityTitle", VM: "1"},

	// Identifying module (Group 0x0008)
	{Tag: New(0x0008, 0x0005), VRs: []vr.VR{vr.CodeString}, Name: "Specific Character Set", Keyword: "SpecificCharacterSet", VM: "1-n"},
	{Tag: New(0x0008, 0x0008), VRs: []vr.VR{vr.CodeString}, Name: "Image Type", Keyword: "ImageType", VM: "2-n"},
	{Tag: New(0x0008, 0x0016), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Class UID", Keyword: "SOPClassUID", VM: "1"},
	{Tag: New(0x0008, 0x0018), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Instance UID", Keyword: "SOPInstanceUID", VM: "1"},
	{Tag: New(0x0008, 0x0020), VRs: []vr.VR{vr.Date}, Name: "Study Date", Keyword: "StudyDate", VM: "1"},
	{Tag: New(0x0008, 0x0021), VRs: []vr.VR{vr.Date}, Name: "Series Date", Keyword: "SeriesDate", VM: "1"},
	{Tag: New(0x0008, 0x0022), VRs: []vr.VR{vr.Date}, Name: "Acquisition Date", Keyword: "AcquisitionDate", VM: "1"},
	{Tag: New(0x0008, 0x0023), VRs: []vr.VR{vr.Date}, Name: "Content Date", Keyword: "ContentDate", VM: "1"},
	{Tag: New(0x0008, 0x0030), VRs: []vr.VR{vr.Time}, Name: "Study Time", Keyword: "StudyTime", VM: "1"},
	{Tag: New(0x0008, 0x0031), VRs: []vr.VR{vr.Time}, Name: "Series Time", Keyword: "SeriesTime", VM: "1"},
	{Tag: New(0x0008, 0x0032), VRs: []vr.VR{vr.Time}, Name: "Acquisition Time", Keyword: "AcquisitionTime", VM: "1"},
	{Tag: New(0x0008, 0x0033), VRs: []vr.VR{vr.Time}, Name: "Content Time", Keyword: "ContentTime", VM: "1"},
	{Tag: New(0x0008, 0x0050), VRs: []vr.VR{vr.ShortString}, Name: "Accession Number", Keyword: "AccessionNumber", VM: "1"},
	{Tag: New(0x0008, 0x0060), VRs: []vr.VR{vr.CodeString}, Name: "Modality", Keyword: "Modality", VM: "1"},
	{Tag: New(0x0008, 0x0070), VRs: []vr.VR{vr.LongString}, Name: "Manufacturer", Keyword: "Manufacturer", VM: "1"},
	{Tag: New(0x0008, 0x0080), VRs: []vr.VR{vr.LongString}, Name: "Institution Name", Keyword: "InstitutionName", VM: "1"},
	{Tag: New(0x0008, 0x0090), VRs: []vr.VR{vr.PersonName}, Name: "Referring Physician's Name", Keyword: "ReferringPhysicianName", VM: "1"},
	{Tag: New(0x0008, 0x0100), VRs: []vr.VR{vr.ShortString}, Name: "Code Value", Keyword: "CodeValue", VM: "1"},
	{Tag: New(0x0008, 0x0102), VRs: []vr.VR{vr.ShortString}, Name: "Coding Scheme Designator", Keyword: "CodingSchemeDesignator", VM: "1"},
	{Tag: New(0x0008, 0x0104), VRs: []vr.VR{vr.LongString}, Name: "Code Meaning", Keyword: "CodeMeaning", VM: "1"},
	{Tag: New(0x0008, 0x103E), VRs: []vr.VR{vr.LongString}, Name: "Series Description", Keyword: "SeriesDescription", VM: "1"},
	{Tag: New(0x0008, 0x1030), VRs: []vr.VR{vr.LongString}, Name: "Study Description", Keyword: "StudyDescription", VM: "1"},
	{Tag: New(0x0008, 0x1090), VRs: []vr.VR{vr.LongString}, Name: "Manufacturer's Model Name", Keyword: "ManufacturerModelName", VM: "1"},
	{Tag: New(0x0008, 0x1110), VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Study Sequence", Keyword: "ReferencedStudySequence", VM: "1"},
	{Tag: New(0x0008, 0x1115), VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Series Sequence", Keyword: "ReferencedSeriesSequence", VM: "1"},
	{Tag: New(0x0008, 0x1140), VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Image Sequence", Keyword: "ReferencedImageSequence", VM: "1"},
	{Tag: New(0x0008, 0x1150), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Referenced SOP Class UID", Keyword: "ReferencedSOPClassUID", VM: "1"},
	{Tag: New(0x0008, 0x1155), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Referenced SOP Instance UID", Keyword: "ReferencedSOPInstanceUID", VM: "1"},

	// Patient module (Group 0x0010)
	{Tag: New(0x0010, 0x0010), VRs: []vr.VR{vr.PersonName}, Name: "Patient's Name", Keyword: "PatientName", VM: "1"},
	{Tag: New(0x0010, 0x0020), VRs: []vr.VR{vr.LongString}, Name: "Patient ID", Keyword: "PatientID", VM: "1"},
	{Tag: New(0x0010, 0x0030), VRs: []vr.VR{vr.Date}, Name: "Patient's Birth Date", Keyword: "PatientBirthDate", VM: "1"},
	{Tag: New(0x0010, 0x0040), VRs: []vr.VR{vr.CodeString}, Name: "Patient's Sex", Keyword: "PatientSex", VM: "1"},
	{Tag: New(0x0010, 0x1010), VRs: []vr.VR{vr.AgeString}, Name: "Patient's Age", Keyword: "PatientAge", VM: "1"},
	{Tag: New(0x0010, 0x1030), VRs: []vr.VR{vr.DecimalString}, Name: "Patient's Weight", Keyword: "PatientWeight", VM: "1"},
	{Tag: New(0x0010, 0x4000), VRs: []vr.VR{vr.LongText}, Name: "Patient Comments", Keyword: "PatientComments", VM: "1"},

	// Acquisition module (Group 0x0018)
	{Tag: New(0x0018, 0x0015), VRs: []vr.VR{vr.CodeString}, Name: "Body Part Examined", Keyword: "BodyPartExamined", VM: "1"},
	{Tag: New(0x0018, 0x0050), VRs: []vr.VR{vr.DecimalString}, Name: "Slice Thickness", Keyword: "SliceThickness", VM: "1"},
	{Tag: New(0x0018, 0x0060), VRs: []vr.VR{vr.DecimalString}, Name: "KVP", Keyword: "KVP", VM: "1"},
	{Tag: New(0x0018, 0x1020), VRs: []vr.VR{vr.LongString}, Name: "Software Versions", Keyword: "SoftwareVersions", VM: "1-n"},
	{Tag: New(0x0018, 0x1151), VRs: []vr.VR{vr.IntegerString}, Name: "X-Ray Tube Current", Keyword: "XRayTubeCurrent", VM: "1"},
	{Tag: New(0x0018, 0x5100), VRs: []vr.VR{vr.CodeString}, Name: "Patient Position", Keyword: "PatientPosition", VM: "1"},

	// Relationship module (Group 0x0020)
	{Tag: New(0x0020, 0x000D), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Study Instance UID", Keyword: "StudyInstanceUID", VM: "1"},
	{Tag: New(0x0020, 0x000E), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Series Instance UID", Keyword: "SeriesInstanceUID", VM: "1"},
	{Tag: New(0x0020, 0x0010), VRs: []vr.VR{vr.ShortString}, Name: "Study ID", Keyword: "StudyID", VM: "1"},
	{Tag: New(0x0020, 0x0011), VRs: []vr.VR{vr.IntegerString}, Name: "Series Number", Keyword: "SeriesNumber", VM: "1"},
	{Tag: New(0x0020, 0x0013), VRs: []vr.VR{vr.IntegerString}, Name: "Instance Number", Keyword: "InstanceNumber", VM: "1"},
	{Tag: New(0x0020, 0x0032), VRs: []vr.VR{vr.DecimalString}, Name: "Image Position (Patient)", Keyword: "ImagePositionPatient", VM: "3"},
	{Tag: New(0x0020, 0x0037), VRs: []vr.VR{vr.DecimalString}, Name: "Image Orientation (Patient)", Keyword: "ImageOrientationPatient", VM: "6"},
	{Tag: New(0x0020, 0x0052), VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Frame of Reference UID", Keyword: "FrameOfReferenceUID", VM: "1"},
	{Tag: New(0x0020, 0x1041), VRs: []vr.VR{vr.DecimalString}, Name: "Slice Location", Keyword: "SliceLocation", VM: "1"},

	// Image Pixel module (Group 0x0028)
	{Tag: New(0x0028, 0x0002), VRs: []vr.VR{vr.UnsignedShort}, Name: "Samples per Pixel", Keyword: "SamplesPerPixel", VM: "1"},
	{Tag: New(0x0028, 0x0004), VRs: []vr.VR{vr.CodeString}, Name: "Photometric Interpretation", Keyword: "PhotometricInterpretation", VM: "1"},
	{Tag: New(0x0028, 0x0006), VRs: []vr.VR{vr.UnsignedShort}, Name: "Planar Configuration", Keyword: "PlanarConfiguration", VM: "1"},
	{Tag: New(0x0028, 0x0008), VRs: []vr.VR{vr.IntegerString}, Name: "Number of Frames", Keyword: "NumberOfFrames", VM: "1"},
	{Tag: New(0x0028, 0x0010), VRs: []vr.VR{vr.UnsignedShort}, Name: "Rows", Keyword: "Rows", VM: "1"},
	{Tag: New(0x0028, 0x0011), VRs: []vr.VR{vr.UnsignedShort}, Name: "Columns", Keyword: "Columns", VM: "1"},
	{Tag: New(0x0028, 0x0030), VRs: []vr.VR{vr.DecimalString}, Name: "Pixel Spacing", Keyword: "PixelSpacing", VM: "2"},
	{Tag: New(0x0028, 0x0100), VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Allocated", Keyword: "BitsAllocated", VM: "1"},
	{Tag: New(0x0028, 0x0101), VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Stored", Keyword: "BitsStored", VM: "1"},
	{Tag: New(0x0028, 0x0102), VRs: []vr.VR{vr.UnsignedShort}, Name: "High Bit", Keyword: "HighBit", VM: "1"},
	{Tag: New(0x0028, 0x0103), VRs: []vr.VR{vr.UnsignedShort}, Name: "Pixel Representation", Keyword: "PixelRepresentation", VM: "1"},
	{Tag: New(0x0028, 0x0120), VRs: []vr.VR{vr.UnsignedShort, vr.SignedShort}, Name: "Pixel Padding Value", Keyword: "PixelPaddingValue", VM: "1"},
	{Tag: New(0x0028, 0x1050), VRs: []vr.VR{vr.DecimalString}, Name: "Window Center", Keyword: "WindowCenter", VM: "1-n"},
	{Tag: New(0x0028, 0x1051), VRs: []vr.VR{vr.DecimalString}, Name: "Window Width", Keyword: "WindowWidth", VM: "1-n"},
	{Tag: New(0x0028, 0x1052), VRs: []vr.VR{vr.DecimalString}, Name: "Rescale Intercept", Keyword: "RescaleIntercept", VM: "1"},
	{Tag: New(0x0028, 0x1053), VRs: []vr.VR{vr.DecimalString}, Name: "Rescale Slope", Keyword: "RescaleSlope", VM: "1"},
	{Tag: New(0x0028, 0x1054), VRs: []vr.VR{vr.LongString}, Name: "Rescale Type", Keyword: "RescaleType", VM: "1"},
	{Tag: New(0x0028, 0x1055), VRs: []vr.VR{vr.LongString}, Name: "Window Center & Width Explanation", Keyword: "WindowCenterWidthExplanation", VM: "1-n"},

	// Procedure step (Group 0x0040)
	{Tag: New(0x0040, 0x0009), VRs: []vr.VR{vr.ShortString}, Name: "Scheduled Procedure Step ID", Keyword: "ScheduledProcedureStepID", VM: "1"},
	{Tag: New(0x0040, 0x0275), VRs: []vr.VR{vr.SequenceOfItems}, Name: "Request Attributes Sequence", Keyword: "RequestAttributesSequence", VM: "1"},
	{Tag: New(0x0040, 0x1001), VRs: []vr.VR{vr.ShortString}, Name: "Requested Procedure ID", Keyword: "RequestedProcedureID", VM: "1"},

	// PET series (Group 0x0054)
	{Tag: New(0x0054, 0x1001), VRs: []vr.VR{vr.CodeString}, Name: "Units", Keyword: "Units", VM: "1"},

	// RT structure set (Group 0x3006)
	{Tag: New(0x3006, 0x0010), VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Frame of Reference Sequence", Keyword: "ReferencedFrameOfReferenceSequence", VM: "1"},
	{Tag: New(0x3006, 0x0012), VRs: []vr.VR{vr.SequenceOfItems}, Name: "RT Referenced Study Sequence", Keyword: "RTReferencedStudySequence", VM: "1"},
	{Tag: New(0x3006, 0x0014), VRs: []vr.VR{vr.SequenceOfItems}, Name: "RT Referenced Series Sequence", Keyword: "RTReferencedSeriesSequence", VM: "1"},
	{Tag: New(0x3006, 0x0016), VRs: []vr.VR{vr.SequenceOfItems}, Name: "Contour Image Sequence", Keyword: "ContourImageSequence", VM: "1"},

	// Pixel data (Group 0x7FE0)
	{Tag: New(0x7FE0, 0x0008), VRs: []vr.VR{vr.OtherFloat}, Name: "Float Pixel Data", Keyword: "FloatPixelData", VM: "1"},
	{Tag: New(0x7FE0, 0x0009), VRs: []vr.VR{vr.OtherDouble}, Name: "Double Float Pixel Data", Keyword: "DoubleFloatPixelData", VM: "1"},
	{Tag: New(0x7FE0, 0x0010), VRs: []vr.VR{vr.OtherWord, vr.OtherByte}, Name: "Pixel Data", Keyword: "PixelData", VM: "1"},

	// Trailing padding and sequence delimiters
	{Tag: New(0xFFFC, 0xFFFC), VRs: []vr.VR{vr.OtherByte}, Name: "Data Set Trailing Padding", Keyword: "DataSetTrailingPadding", VM: "1", Retired: true},
	{Tag: New(0xFFFE, 0xE000), VRs: []vr.VR{vr.Unknown}, Name: "Item", Keyword: "Item", VM: "1"},
	{Tag: New(0xFFFE, 0xE00D), VRs: []vr.VR{vr.Unknown}, Name: "Item Delimitation Item", Keyword: "ItemDelimitationItem", VM: "1"},
	{Tag: New(0xFFFE, 0xE0DD), VRs: []vr.VR{vr.Unknown}, Name: "Sequence Delimitation Item", Keyword: "SequenceDelimitationItem", VM: "1"},
}
