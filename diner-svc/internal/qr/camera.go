package qr

// CameraErrorKind classifies why the scanner could not start.
type CameraErrorKind string

const (
	CameraPermissionDenied CameraErrorKind = "permission_denied"
	CameraNotFound         CameraErrorKind = "not_found"
	CameraBusy             CameraErrorKind = "busy"
	CameraInsecureContext  CameraErrorKind = "insecure_context"
)

// DescribeCameraError returns the message shown next to the manual entry form.
func DescribeCameraError(kind CameraErrorKind) string {
	switch kind {
	case CameraPermissionDenied:
		return "Camera permission denied. Please allow camera access and try again."
	case CameraNotFound:
		return "No camera found on this device."
	case CameraBusy:
		return "Camera is being used by another app."
	case CameraInsecureContext:
		return "Camera requires HTTPS. Please use secure connection."
	default:
		return "Unable to access camera."
	}
}
