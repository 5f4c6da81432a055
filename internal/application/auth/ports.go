package auth

// OTPSender entrega el código OTP al teléfono del usuario. La implementación
// de producción usa un proveedor de SMS/WhatsApp; en desarrollo se loguea.
type OTPSender interface {
	Send(phone, code string) error
}
