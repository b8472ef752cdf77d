package sanitizer

// FormatCPF renders an 11-digit CPF in its canonical ddd.ddd.ddd-dd grouping.
// Inputs that do not hold exactly 11 digits are returned unchanged to avoid
// data loss.
func FormatCPF(cpf string) string {
	digits := OnlyDigits(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// FormatCNPJ renders a 14-digit CNPJ in its canonical dd.ddd.ddd/dddd-dd
// grouping. Inputs that do not hold exactly 14 digits are returned unchanged.
func FormatCNPJ(cnpj string) string {
	digits := OnlyDigits(cnpj)
	if len(digits) != 14 {
		return cnpj
	}
	return digits[0:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:14]
}

// FormatCEP renders an 8-digit postal code as ddddd-ddd. Inputs that do not
// hold exactly 8 digits are returned unchanged.
func FormatCEP(cep string) string {
	digits := OnlyDigits(cep)
	if len(digits) != 8 {
		return cep
	}
	return digits[0:5] + "-" + digits[5:8]
}

// FormatPhoneBR renders a Brazilian local number in international display
// form: +55 (DD) XXXXX-XXXX for 11-digit mobiles, +55 (DD) XXXX-XXXX for
// 10-digit landlines. Any other digit count is returned unchanged.
func FormatPhoneBR(phone string) string {
	digits := OnlyDigits(phone)
	switch len(digits) {
	case 11:
		return "+55 (" + digits[0:2] + ") " + digits[2:7] + "-" + digits[7:11]
	case 10:
		return "+55 (" + digits[0:2] + ") " + digits[2:6] + "-" + digits[6:10]
	default:
		return phone
	}
}
