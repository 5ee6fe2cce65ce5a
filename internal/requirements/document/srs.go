package document

import (
	"fmt"
	"strings"

	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

const organization = "ReqMaster AI"

// numberedList renders items as "N. Title - Description" lines, or the
// placeholder when the list is empty. Sections are never left blank.
func numberedList(items []domain.RequirementItem, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	lines := make([]string, 0, len(items))
	for i, r := range items {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, r.Title, r.Description))
	}
	return strings.Join(lines, "\n")
}

func numberedStrings(items []string, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	lines := make([]string, 0, len(items))
	for i, s := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, s))
	}
	return strings.Join(lines, "\n")
}

// SRS emits a fixed IEEE-style document: title page, revision history,
// sections 1-6 and four appendices. Every section missing model data is
// filled with an explicit placeholder token so the document is always
// structurally complete.
func (g *Generator) SRS(r domain.Requirements) string {
	project := r.ProjectName
	if project == "" {
		project = "<Project>"
	}
	author := r.ClientName
	if author == "" {
		author = "<author>"
	}
	createdDate := g.date()

	fnSummary := numberedList(r.Functional, "<Functional requirements to be defined>")
	nfSummary := numberedList(r.NonFunctional, "<Non-functional requirements to be defined>")
	domainSummary := numberedList(r.Domain, "<Domain requirements to be defined>")
	risksText := numberedStrings(r.Risks, "<Key project risks to be defined>")

	notesText := "<Additional notes captured during elicitation>"
	if len(r.Notes) > 0 {
		notesText = strings.Join(r.Notes, "\n")
	}

	timeline := r.TimelineSuggestion
	if timeline == "" {
		timeline = "<Project timeline, assumptions, and dependencies to be refined>"
	}

	productScope := fmt.Sprintf("%s is a software system to address the needs elicited from the client. It provides the following major capabilities:\n%s", project, fnSummary)

	systemFeatures := "<System features to be detailed>"
	if len(r.Functional) > 0 {
		blocks := make([]string, 0, len(r.Functional))
		for i, req := range r.Functional {
			blocks = append(blocks, fmt.Sprintf("System Feature %d: %s\nDescription: %s\nPriority: %s", i+1, req.Title, req.Description, req.Priority))
		}
		systemFeatures = strings.Join(blocks, "\n\n")
	}

	return fmt.Sprintf(`Software Requirements Specification
for
%[1]s
Version 1.0 approved
Prepared by %[2]s
%[3]s
%[4]s

Table of Contents
Table of Contents	ii
Revision History	ii
1.	Introduction	1
1.1	Purpose	1
1.2	Document Conventions	1
1.3	Intended Audience and Reading Suggestions	1
1.4	Product Scope	1
1.5	References	1
2.	Overall Description	2
2.1	Product Perspective	2
2.2	Product Functions	2
2.3	User Classes and Characteristics	2
2.4	Operating Environment	2
2.5	Design and Implementation Constraints	2
2.6	User Documentation	2
2.7	Assumptions and Dependencies	3
3.	External Interface Requirements	3
3.1	User Interfaces	3
3.2	Hardware Interfaces	3
3.3	Software Interfaces	3
3.4	Communications Interfaces	3
4.	System Features	4
4.1	System Feature 1	4
4.2	System Feature 2 (and so on)	4
5.	Other Nonfunctional Requirements	4
5.1	Performance Requirements	4
5.2	Safety Requirements	5
5.3	Security Requirements	5
5.4	Software Quality Attributes	5
5.5	Business Rules	5
6.	Other Requirements	5
Appendix A: Glossary	5
Appendix B: Analysis Models	5
Appendix C: To Be Determined List	6
Appendix D: Traceability Matrix	6


Revision History
Name	Date	Reason For Changes	Version
%[2]s	%[4]s	Initial version	1.0


1.	Introduction
1.1	Purpose
This Software Requirements Specification (SRS) defines the functional and non-functional requirements for %[1]s. It is based on the requirements elicited through interactive interviews with the client.
1.2	Document Conventions
This document follows an IEEE-style SRS structure. Headings and numbering follow the standard sections. Plain text paragraphs describe the agreed requirements.
1.3	Intended Audience and Reading Suggestions
This SRS is intended for stakeholders including the client, business analysts, architects, developers, testers, and project managers involved in the delivery of %[1]s. Readers seeking a high-level overview should first read Sections 1 and 2. Developers and testers should pay particular attention to Sections 3, 4 and 5.
1.4	Product Scope
%[5]s
1.5	References
%[6]s
2.	Overall Description
2.1	Product Perspective
%[7]s
2.2	Product Functions
%[8]s
2.3	User Classes and Characteristics
<Specific user roles and their characteristics to be detailed based on project context.>
2.4	Operating Environment
<Describe hosting, operating systems, and external systems once finalized with the client.>
2.5	Design and Implementation Constraints
%[9]s
2.6	User Documentation
<Describe user manuals, online help, and training materials to be produced.>
2.7	Assumptions and Dependencies
%[10]s
3.	External Interface Requirements
3.1	User Interfaces
<UI requirements will be derived from detailed UI/UX design for %[1]s.>
3.2	Hardware Interfaces
<Hardware interfaces are TBD and depend on the selected deployment environment.>
3.3	Software Interfaces
%[7]s
3.4	Communications Interfaces
<Communication protocols and integration patterns will be specified during design.>
4.	System Features
%[11]s
5.	Other Nonfunctional Requirements
5.1	Performance Requirements
%[12]s
5.2	Safety Requirements
<Safety-related constraints to be captured if applicable.>
5.3	Security Requirements
<Security-related non-functional requirements (authentication, authorization, data protection) to be refined from the non-functional list above.>
5.4	Software Quality Attributes
<Quality attributes such as reliability, usability, maintainability, and portability will be prioritized based on client needs.>
5.5	Business Rules
<Business rules derived from stakeholder interviews to be itemized here.>
6.	Other Requirements
<Any remaining requirements not covered above will be documented in this section.>
Appendix A: Glossary
<Glossary of project-specific terms to be maintained here.>
Appendix B: Analysis Models
<Diagrams such as use case, class, sequence and ERD generated by the tool may be attached here.>
Appendix C: To Be Determined List
<TBD items from all sections are collected here for tracking.>


Appendix D: Traceability Matrix
<The traceability matrix mapping requirements to design, implementation and test cases will be added here.>
`,
		project,       // 1
		author,        // 2
		organization,  // 3
		createdDate,   // 4
		productScope,  // 5
		notesText,     // 6
		domainSummary, // 7
		fnSummary,     // 8
		risksText,     // 9
		timeline,      // 10
		systemFeatures, // 11
		nfSummary,     // 12
	)
}
