package types

// ImageFormat is an output encoding for rendered charts
type ImageFormat string

const (
	ImageFormatPNG ImageFormat = "png"
	ImageFormatSVG ImageFormat = "svg"
)

// String returns the string representation
func (f ImageFormat) String() string {
	return string(f)
}

// IsValid checks if the format is supported
func (f ImageFormat) IsValid() bool {
	switch f {
	case ImageFormatPNG, ImageFormatSVG:
		return true
	default:
		return false
	}
}

// ContentType returns the MIME type of the format
func (f ImageFormat) ContentType() string {
	switch f {
	case ImageFormatPNG:
		return "image/png"
	case ImageFormatSVG:
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
