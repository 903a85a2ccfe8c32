package mail

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

var leadTextTemplate = texttemplate.Must(texttemplate.New("lead.txt").Parse(`New contact form submission

Name: {{.Lead.Name}}
Email: {{.Lead.Email}}
Phone: {{or .Lead.Phone "-"}}
Company: {{or .Lead.Company "-"}}
Service Interest: {{.Lead.ServiceInterest}}
Budget: {{or .Lead.Budget "-"}} ({{.Lead.Currency}})
Timeline: {{or .Lead.Timeline "-"}}
Submitted: {{.SubmittedAt}}

Project Details:
{{.Lead.ProjectDetails}}
`))

var leadHTMLTemplate = htmltemplate.Must(htmltemplate.New("lead.html").Parse(`<h3>New Contact Submission</h3>
<p><strong>Name:</strong> {{.Lead.Name}}</p>
<p><strong>Email:</strong> {{.Lead.Email}}</p>
<p><strong>Phone:</strong> {{or .Lead.Phone "-"}}</p>
<p><strong>Company:</strong> {{or .Lead.Company "-"}}</p>
<p><strong>Service Interest:</strong> {{.Lead.ServiceInterest}}</p>
<p><strong>Budget:</strong> {{or .Lead.Budget "-"}} ({{.Lead.Currency}})</p>
<p><strong>Timeline:</strong> {{or .Lead.Timeline "-"}}</p>
<p><strong>Project Details:</strong></p>
<p>{{.Lead.ProjectDetails}}</p>
<p><small>Submitted {{.SubmittedAt}}</small></p>
`))
