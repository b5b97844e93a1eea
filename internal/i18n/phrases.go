package i18n

var table = map[Language]Phrases{
	English: {
		Greeting:             "Hello",
		MonthlyEarnings:      "Monthly Earnings",
		UnreadMessages:       "Unread Messages",
		SalesOverview:        "Sales Overview",
		TotalSales:           "Total Sales",
		UniqueCustomers:      "Unique Customers",
		SalesTrend:           "Sales Trend",
		PersonalAccount:      "Personal Account",
		EditPersonalInfo:     "Edit Personal Info",
		NotificationSettings: "Notification Settings",
		PrivacySettings:      "Privacy Settings",
		MonetizationSettings: "Monetization Settings",
		ApplicationSettings:  "Application Settings",
		DarkMode:             "Dark Mode",
		Language:             "Language",
		LogOut:               "Log Out",
		Chats:                "Chats",
		Online:               "Online",
		TypeMessage:          "Type a message...",
		Back:                 "Back",
		Month:                "Month",
		Sales:                "Sales",
		NavHome:              "Home",
		NavMoney:             "Money",
		NavChat:              "Chat",
		NavAccount:           "Account",
	},
	Spanish: {
		Greeting:             "Hola",
		MonthlyEarnings:      "Ganancias Mensuales",
		UnreadMessages:       "Mensajes No Leídos",
		SalesOverview:        "Resumen de Ventas",
		TotalSales:           "Ventas Totales",
		UniqueCustomers:      "Clientes Únicos",
		SalesTrend:           "Tendencia de Ventas",
		PersonalAccount:      "Cuenta Personal",
		EditPersonalInfo:     "Editar Información Personal",
		NotificationSettings: "Configuración de Notificaciones",
		PrivacySettings:      "Configuración de Privacidad",
		MonetizationSettings: "Configuración de Monetización",
		ApplicationSettings:  "Configuración de la Aplicación",
		DarkMode:             "Modo Oscuro",
		Language:             "Idioma",
		LogOut:               "Cerrar Sesión",
		Chats:                "Chats",
		Online:               "En línea",
		TypeMessage:          "Escribe un mensaje...",
		Back:                 "Atrás",
		Month:                "Mes",
		Sales:                "Ventas",
		NavHome:              "Inicio",
		NavMoney:             "Dinero",
		NavChat:              "Chat",
		NavAccount:           "Cuenta",
	},
	French: {
		Greeting:             "Bonjour",
		MonthlyEarnings:      "Revenus Mensuels",
		UnreadMessages:       "Messages Non Lus",
		SalesOverview:        "Aperçu des Ventes",
		TotalSales:           "Ventes Totales",
		UniqueCustomers:      "Clients Uniques",
		SalesTrend:           "Tendance des Ventes",
		PersonalAccount:      "Compte Personnel",
		EditPersonalInfo:     "Modifier les Informations Personnelles",
		NotificationSettings: "Paramètres de Notification",
		PrivacySettings:      "Paramètres de Confidentialité",
		MonetizationSettings: "Paramètres de Monétisation",
		ApplicationSettings:  "Paramètres de l'Application",
		DarkMode:             "Mode Sombre",
		Language:             "Langue",
		LogOut:               "Se Déconnecter",
		Chats:                "Discussions",
		Online:               "En ligne",
		TypeMessage:          "Écrivez un message...",
		Back:                 "Retour",
		Month:                "Mois",
		Sales:                "Ventes",
		NavHome:              "Accueil",
		NavMoney:             "Argent",
		NavChat:              "Discussion",
		NavAccount:           "Compte",
	},
	German: {
		Greeting:             "Hallo",
		MonthlyEarnings:      "Monatliche Einnahmen",
		UnreadMessages:       "Ungelesene Nachrichten",
		SalesOverview:        "Verkaufsübersicht",
		TotalSales:           "Gesamtumsatz",
		UniqueCustomers:      "Einzigartige Kunden",
		SalesTrend:           "Verkaufstrend",
		PersonalAccount:      "Persönliches Konto",
		EditPersonalInfo:     "Persönliche Daten Bearbeiten",
		NotificationSettings: "Benachrichtigungseinstellungen",
		PrivacySettings:      "Datenschutzeinstellungen",
		MonetizationSettings: "Monetarisierungseinstellungen",
		ApplicationSettings:  "Anwendungseinstellungen",
		DarkMode:             "Dunkelmodus",
		Language:             "Sprache",
		LogOut:               "Abmelden",
		Chats:                "Chats",
		Online:               "Online",
		TypeMessage:          "Nachricht eingeben...",
		Back:                 "Zurück",
		Month:                "Monat",
		Sales:                "Umsatz",
		NavHome:              "Start",
		NavMoney:             "Geld",
		NavChat:              "Chat",
		NavAccount:           "Konto",
	},
}
