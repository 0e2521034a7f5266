package i18n

var german = map[string]string{
	// lookups
	"Property not found":    "Immobilie nicht gefunden",
	"Credit not found":      "Kredit nicht gefunden",
	"Transaction not found": "Transaktion nicht gefunden",
	"Document not found":    "Dokument nicht gefunden",

	// property and credit rules
	"Purchase price must not be negative":                 "Der Kaufpreis darf nicht negativ sein",
	"Original amount must be greater than zero":           "Der Kreditbetrag muss größer als null sein",
	"Interest rate must be between 0 and 100":             "Der Zinssatz muss zwischen 0 und 100 liegen",
	"Monthly payment must be greater than zero":           "Die monatliche Rate muss größer als null sein",
	"Monthly payment must not exceed the original amount": "Die monatliche Rate darf den Kreditbetrag nicht übersteigen",
	"End date must be after start date":                   "Das Enddatum muss nach dem Startdatum liegen",
	"Start date must not be in the future":                "Das Startdatum darf nicht in der Zukunft liegen",

	// transaction rules
	"Credit must belong to the same property":                            "Der Kredit muss zur selben Immobilie gehören",
	"Transactions linked to a credit must use the loan_payment category": "Mit einem Kredit verknüpfte Transaktionen müssen die Kategorie Kreditrate verwenden",
	"Amount must be greater than zero":                                   "Der Betrag muss größer als null sein",
	"Income transactions cannot use category %s":                         "Einnahmen können die Kategorie %s nicht verwenden",
	"Transaction date must not be more than 365 days in the future":      "Das Transaktionsdatum darf höchstens 365 Tage in der Zukunft liegen",
	"Transaction must belong to the same property":                       "Die Transaktion muss zur selben Immobilie gehören",

	// documents
	"Document cannot be linked to both transaction and credit": "Dokument kann nicht gleichzeitig mit Transaktion und Kredit verknüpft werden",
	"Invalid category: %s":                                     "Ungültige Kategorie: %s",
	"No file selected":                                         "Keine Datei ausgewählt",
	"File type not allowed":                                    "Dateityp nicht erlaubt",
	"File size exceeds maximum allowed size":                   "Die Datei überschreitet die maximal erlaubte Größe",
	"Failed to read uploaded file":                             "Hochgeladene Datei konnte nicht gelesen werden",
	"Failed to save file":                                      "Datei konnte nicht gespeichert werden",
	"File not found on disk":                                   "Datei nicht auf Festplatte gefunden",
	"Failed to read file":                                      "Datei konnte nicht gelesen werden",
	"Failed to delete file":                                    "Datei konnte nicht gelöscht werden",

	// delete guards
	"Cannot delete property with %d credits, %d transactions and %d documents": "Immobilie mit %d Krediten, %d Transaktionen und %d Dokumenten kann nicht gelöscht werden",
	"Cannot delete credit with %d linked transactions":                         "Kredit mit %d verknüpften Transaktionen kann nicht gelöscht werden",

	// persistence
	"Referenced resource does not exist":           "Die referenzierte Ressource existiert nicht",
	"Resource with this identifier already exists": "Eine Ressource mit dieser Kennung existiert bereits",
	"Required field is missing":                    "Ein Pflichtfeld fehlt",
	"Database constraint violation":                "Verletzung einer Datenbankbedingung",
	"Numeric value out of range":                   "Zahlenwert außerhalb des zulässigen Bereichs",
	"Database operation failed":                    "Datenbankoperation fehlgeschlagen",

	// request handling
	"validation failed":     "Validierungsfehler",
	"Invalid identifier":    "Ungültige Kennung",
	"Invalid amount":        "Ungültiger Betrag",
	"Invalid date":          "Ungültiges Datum",
	"Internal server error": "Interner Serverfehler",
}
