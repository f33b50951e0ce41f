package templates

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/cmd/web/viewtypes"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/registration"
	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/pkg/utils/markdown"
)

// RegistrationFormID is the element patched after a Datastar submission.
const RegistrationFormID = "registration-form"

// RegisterPage renders the registration page. errs is nil on first display.
func RegisterPage(p *i18n.Printer, pg Page, form registration.Form, errs registration.Errors) templ.Component {
	regionOf := func(key string) viewtypes.Region { return viewtypes.Lookup(viewtypes.PageRegister, key) }

	return component(layout(p, pg, map[string]any{"submitting": false},
		Section(
			Class("hero-gradient pt-32 pb-24"),
			Div(
				Class("container mx-auto px-4 max-w-3xl"),
				Div(
					reveal(regionOf("registerTitle"), 0, "text-center mb-12"),
					Span(Class(viewtypes.SectionBadge), g.Text(p.T("register.badge"))),
					H1(Class("text-3xl md:text-5xl font-bold text-gray-900"), g.Text(p.T("register.title"))),
					P(Class("mt-4 text-lg text-gray-600"), g.Text(p.T("register.description"))),
				),
				Div(
					reveal(regionOf("registerForm"), 200, viewtypes.Card+" p-6 md:p-8"),
					H2(Class("text-xl font-semibold text-gray-900 mb-6"), g.Text(p.T("register.form_title"))),
					registrationForm(p, form, errs),
				),
			),
		),
	))
}

// RegistrationForm renders the form alone, for SSE patches.
func RegistrationForm(p *i18n.Printer, form registration.Form, errs registration.Errors) templ.Component {
	return component(registrationForm(p, form, errs))
}

func registrationForm(p *i18n.Printer, form registration.Form, errs registration.Errors) g.Node {
	return g.El("form",
		ID(RegistrationFormID),
		Method("post"),
		Action("/register"),
		g.Attr("novalidate"),
		Class("space-y-6"),
		dsIndicator("submitting"),
		dsOn("submit__prevent", "@post('/register', {contentType: 'form'})"),
		Div(
			Class("grid gap-6 md:grid-cols-2"),
			textField(p, registration.FieldFirstName, "text", "register.first_name", form.FirstName, errs, AutoComplete("given-name")),
			textField(p, registration.FieldLastName, "text", "register.last_name", form.LastName, errs, AutoComplete("family-name")),
		),
		textField(p, registration.FieldEmail, "email", "register.email", form.Email, errs, AutoComplete("email")),
		Div(
			Class("grid gap-6 md:grid-cols-2"),
			textField(p, registration.FieldPhone, "tel", "register.phone", form.Phone, errs, AutoComplete("tel")),
			textField(p, registration.FieldBirthDate, "date", "register.birth_date", form.BirthDate, errs, AutoComplete("bday")),
		),
		eventField(p, form.Event, errs),
		Button(
			Type("submit"),
			Class(viewtypes.PrimaryButton+" w-full"),
			dsAttr("disabled", "$submitting"),
			Span(dsShow("!$submitting"), g.Text(p.T("register.submit"))),
			Span(
				Class("inline-flex items-center gap-2"),
				Style("display: none"),
				dsShow("$submitting"),
				I(Class("fa-solid fa-circle-notch spinner")),
				g.Text(p.T("register.submitting")),
			),
		),
		P(Class("text-xs text-center text-gray-500"), g.Raw(string(markdown.Inline(p.T("register.consent"))))),
	)
}

func fieldID(name string) string {
	return "field-" + name
}

func fieldError(p *i18n.Printer, name string, errs registration.Errors) g.Node {
	if !errs.Has(name) {
		return nil
	}
	return P(ID("error-"+name), Class(viewtypes.FieldError), Role("alert"), g.Text(p.T(errs[name])))
}

func inputClass(name string, errs registration.Errors) string {
	if errs.Has(name) {
		return viewtypes.FieldInput + " " + viewtypes.FieldInputError
	}
	return viewtypes.FieldInput
}

func textField(p *i18n.Printer, name, typ, labelKey, value string, errs registration.Errors, extra ...g.Node) g.Node {
	var placeholder g.Node
	if typ != "date" {
		placeholder = Placeholder(p.T(labelKey + "_placeholder"))
	}
	return Div(
		Label(For(fieldID(name)), Class(viewtypes.FieldLabel), g.Text(p.T(labelKey))),
		Input(
			ID(fieldID(name)),
			Name(name),
			Type(typ),
			Value(value),
			placeholder,
			Class(inputClass(name, errs)),
			g.If(errs.Has(name), Aria("invalid", "true")),
			g.If(errs.Has(name), Aria("describedby", "error-"+name)),
			g.Group(extra),
		),
		fieldError(p, name, errs),
	)
}

func eventField(p *i18n.Printer, selected string, errs registration.Errors) g.Node {
	name := registration.FieldEvent
	return Div(
		Label(For(fieldID(name)), Class(viewtypes.FieldLabel), g.Text(p.T("register.event"))),
		Select(
			ID(fieldID(name)),
			Name(name),
			Class(inputClass(name, errs)+" bg-white"),
			g.If(errs.Has(name), Aria("invalid", "true")),
			Option(Value(""), g.If(selected == "", Selected()), g.Text(p.T("register.event_placeholder"))),
			g.Group(g.Map(registration.Events(), func(e registration.Event) g.Node {
				return Option(Value(e.Value), g.If(selected == e.Value, Selected()), g.Text(p.T(e.LabelKey)))
			})),
		),
		fieldError(p, name, errs),
	)
}
