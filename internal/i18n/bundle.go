package i18n

// bundles holds the per-locale strings the page templates need. Full copy
// localization is out of scope; only structural labels live here.
var bundles = map[string]map[string]string{
	ES: {
		"nav_home":     "Inicio",
		"nav_about":    "Sobre mí",
		"nav_projects": "Proyectos",
		"nav_contact":  "Contacto",

		"home_title":    "AI & Full Stack Developer",
		"home_greeting": "Hola, soy Pepe 👋",
		"home_cta":      "Ver mis proyectos",

		"home_projects_title": "Proyectos destacados",

		"about_title":        "Sobre mí",
		"about_skills_title": "Habilidades",
		"contact_title":      "Contacto",

		"project_back": "Volver a proyectos",
		"project_tech": "Tecnologías",
		"project_live": "Ver en vivo",
		"project_code": "Ver código",

		"form_name":    "Nombre",
		"form_email":   "Email",
		"form_subject": "Asunto",
		"form_message": "Mensaje",
		"form_send":    "Enviar mensaje",

		"admin_title":            "Panel de administración",
		"admin_projects":         "Proyectos",
		"admin_messages":         "Mensajes",
		"admin_unread":           "sin leer",
		"admin_logout":           "Cerrar sesión",
		"login_title":            "Iniciar sesión",
		"login_email":            "Correo",
		"login_password":         "Contraseña",
		"login_submit":           "Entrar",
		"password_current":       "Contraseña actual",
		"password_new":           "Nueva contraseña",
		"password_confirm":       "Confirmar contraseña",
		"password_change_submit": "Cambiar contraseña",

		"not_found_title": "Página no encontrada",
		"back_home":       "Volver al inicio",
	},
	EN: {
		"nav_home":     "Home",
		"nav_about":    "About",
		"nav_projects": "Projects",
		"nav_contact":  "Contact",

		"home_title":    "AI & Full Stack Developer",
		"home_greeting": "Hi, I'm Pepe 👋",
		"home_cta":      "See my projects",

		"home_projects_title": "Featured projects",

		"about_title":        "About me",
		"about_skills_title": "Skills",
		"contact_title":      "Contact",

		"project_back": "Back to projects",
		"project_tech": "Technologies",
		"project_live": "View live",
		"project_code": "View code",

		"form_name":    "Name",
		"form_email":   "Email",
		"form_subject": "Subject",
		"form_message": "Message",
		"form_send":    "Send message",

		"admin_title":            "Admin dashboard",
		"admin_projects":         "Projects",
		"admin_messages":         "Messages",
		"admin_unread":           "unread",
		"admin_logout":           "Log out",
		"login_title":            "Log in",
		"login_email":            "Email",
		"login_password":         "Password",
		"login_submit":           "Sign in",
		"password_current":       "Current password",
		"password_new":           "New password",
		"password_confirm":       "Confirm password",
		"password_change_submit": "Change password",

		"not_found_title": "Page not found",
		"back_home":       "Back home",
	},
}

// T returns the string for key in the given locale, falling back to the
// default locale and finally to the key itself.
func T(locale, key string) string {
	if b, ok := bundles[locale]; ok {
		if s, ok := b[key]; ok {
			return s
		}
	}
	if s, ok := bundles[DefaultLocale][key]; ok {
		return s
	}
	return key
}

// Bundle returns the full string table for a locale (default-locale table
// for unsupported tags). Templates index it directly.
func Bundle(locale string) map[string]string {
	if b, ok := bundles[locale]; ok {
		return b
	}
	return bundles[DefaultLocale]
}
