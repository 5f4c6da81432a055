// Package sms implementa la entrega de códigos OTP. La implementación actual
// escribe al log; el puerto auth.OTPSender permite conectar un proveedor real
// (Twilio, WhatsApp Business) sin tocar el caso de uso.
package sms

import (
	"github.com/jhoicas/Mercado-api/internal/application/auth"
	"github.com/jhoicas/Mercado-api/pkg/logger"
)

var _ auth.OTPSender = (*LogSender)(nil)

// LogSender escribe el código OTP al log. Solo para desarrollo: en producción
// el código jamás debe quedar en los logs.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender construye el sender.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send loguea el código dirigido al teléfono.
func (s *LogSender) Send(phone, code string) error {
	s.log.Info().
		Str("phone", phone).
		Str("code", code).
		Msg("código OTP generado (entrega por log, solo desarrollo)")
	return nil
}
