package i18n

var dictionaries = map[string]map[string]string{
	"en": {
		KeyInvalidRequest:    "Invalid request payload: %s",
		KeyInvalidAmount:     "Amount must not be negative",
		KeyInvalidRate:       "Rate must be at least 0 and below 1",
		KeyInvalidTaxStatus:  "Tax status must be RESIDENT or NON_RESIDENT",
		KeyInvalidDirection:  "Direction must be grossToNet or netToGross",
		KeyInvalidDate:       "Date must use the YYYY-MM-DD format",
		KeyNoApplicableRule:  "No payroll rule is effective on the requested date",
		KeyDivisionUndefined: "Gross cannot be derived from net at a 100% rate",
		KeyNotFound:          "Record not found",
		KeyRuleInUse:         "The rule version is referenced by payroll calculations and cannot be changed",
		KeyRuleConflict:      "A rule version with this effective date already exists",
		KeyRuleChanged:       "The payroll rule changed during the calculation, please retry",
		KeyUnauthorized:      "Authentication required",
		KeyForbidden:         "Access denied: insufficient permissions",
		KeyInternal:          "Internal server error",
		KeyEmailTaken:        "Email is already in use",
		KeyUserExists:        "A user with this email or username already exists",
		KeyBadCredentials:    "Invalid email or password",
		KeyColNumber:         "Number",
		KeyColPeriod:         "Period",
		KeyColPersonnelNo:    "Personnel No.",
		KeyColEmployee:       "Employee",
		KeyColTaxStatus:      "Tax status",
		KeyColDirection:      "Direction",
		KeyColGross:          "Gross",
		KeyColWithheld:       "Withheld",
		KeyColNet:            "Net",
		KeyColRate:           "Rate",
		KeyColTotal:          "Total",
		KeySheetPayroll:      "Payroll",
		KeyLoggedOut:         "Logged out",
	},
	"ru": {
		KeyInvalidRequest:    "Некорректный запрос: %s",
		KeyInvalidAmount:     "Сумма не может быть отрицательной",
		KeyInvalidRate:       "Ставка должна быть не меньше 0 и меньше 1",
		KeyInvalidTaxStatus:  "Налоговый статус должен быть RESIDENT или NON_RESIDENT",
		KeyInvalidDirection:  "Направление должно быть grossToNet или netToGross",
		KeyInvalidDate:       "Дата должна быть в формате ГГГГ-ММ-ДД",
		KeyNoApplicableRule:  "На указанную дату не действует ни одна версия правил НДФЛ",
		KeyDivisionUndefined: "Невозможно рассчитать сумму до вычета при ставке 100%",
		KeyNotFound:          "Запись не найдена",
		KeyRuleInUse:         "Версия правил используется в расчётах и не может быть изменена",
		KeyRuleConflict:      "Версия правил с такой датой начала действия уже существует",
		KeyRuleChanged:       "Правила расчёта изменились во время операции, повторите запрос",
		KeyUnauthorized:      "Требуется авторизация",
		KeyForbidden:         "Доступ запрещён: недостаточно прав",
		KeyInternal:          "Внутренняя ошибка сервера",
		KeyEmailTaken:        "Этот email уже используется",
		KeyUserExists:        "Пользователь с таким email или именем уже существует",
		KeyBadCredentials:    "Неверный email или пароль",
		KeyColNumber:         "Номер",
		KeyColPeriod:         "Период",
		KeyColPersonnelNo:    "Табельный номер",
		KeyColEmployee:       "Сотрудник",
		KeyColTaxStatus:      "Налоговый статус",
		KeyColDirection:      "Направление",
		KeyColGross:          "Начислено",
		KeyColWithheld:       "НДФЛ",
		KeyColNet:            "К выплате",
		KeyColRate:           "Ставка",
		KeyColTotal:          "Итого",
		KeySheetPayroll:      "Зарплата",
		KeyLoggedOut:         "Выход выполнен",
	},
	"tr": {
		KeyInvalidRequest:    "Geçersiz istek: %s",
		KeyInvalidAmount:     "Tutar negatif olamaz",
		KeyInvalidRate:       "Oran 0 veya daha büyük ve 1'den küçük olmalıdır",
		KeyInvalidTaxStatus:  "Vergi durumu RESIDENT veya NON_RESIDENT olmalıdır",
		KeyInvalidDirection:  "Yön grossToNet veya netToGross olmalıdır",
		KeyInvalidDate:       "Tarih YYYY-AA-GG biçiminde olmalıdır",
		KeyNoApplicableRule:  "İstenen tarihte geçerli bir bordro kuralı yok",
		KeyDivisionUndefined: "Oran %100 iken brüt tutar hesaplanamaz",
		KeyNotFound:          "Kayıt bulunamadı",
		KeyRuleInUse:         "Kural sürümü bordro hesaplamalarında kullanıldığı için değiştirilemez",
		KeyRuleConflict:      "Bu yürürlük tarihine sahip bir kural sürümü zaten var",
		KeyRuleChanged:       "Hesaplama sırasında bordro kuralı değişti, lütfen tekrar deneyin",
		KeyUnauthorized:      "Kimlik doğrulama gerekli",
		KeyForbidden:         "Erişim reddedildi: yetersiz izin",
		KeyInternal:          "Sunucu hatası",
		KeyEmailTaken:        "Bu e-posta zaten kullanılıyor",
		KeyUserExists:        "Bu e-posta veya kullanıcı adıyla bir kullanıcı zaten var",
		KeyBadCredentials:    "Geçersiz e-posta veya şifre",
		KeyColNumber:         "Numara",
		KeyColPeriod:         "Dönem",
		KeyColPersonnelNo:    "Sicil No",
		KeyColEmployee:       "Çalışan",
		KeyColTaxStatus:      "Vergi durumu",
		KeyColDirection:      "Yön",
		KeyColGross:          "Brüt",
		KeyColWithheld:       "Kesinti",
		KeyColNet:            "Net",
		KeyColRate:           "Oran",
		KeyColTotal:          "Toplam",
		KeySheetPayroll:      "Bordro",
		KeyLoggedOut:         "Çıkış yapıldı",
	},
}
