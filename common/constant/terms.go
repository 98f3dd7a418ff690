package constant

// Legal copy for the static terms block. The four sections render in order,
// each offset by the measured height of the one before it.
const (
	TermsHeading = "E-ticket Terms and Conditions"

	TermsContractClause = `This E-Ticket is a contract, under French law, to the exclusion of all others legislation. This contract is a translation of its French version, which shall be the only authoritative text in the event of a dispute. This contract and the following Terms and Conditions binds yourself with the organiser of the event you attend to (hereafter "The Event"). The details of this contract appear on the E-Ticket. By buying this E-Ticket you chose to agree to the organiser's specific conditions, to the rules of procedure of the place where the event is hosted, to the rules of good behaviour established by the organiser, and to the dealer's general terms and conditions of sale if the E-Ticket was purchased from a dealer.`

	TermsValidityHeading = "Validity of E-Tickets and access to the Event"
	TermsValidityClause  = `Except with the express agreement of the organiser, this E-Ticket cannot be refunded, is personal and cannot be given nor traded. Access to the Event is subject to the validity check of your E-Ticket. This E-Ticket is only valid for the specific place, session, date and time of the Event written on the entrance pass. For any event starting at a specific time, the organiser could refuse the access to the event after official opening time, which does not necessarily create an entitlement to refund. Each E-Ticket has a unique barcode, allowing one single person to access the event. This E-Ticket is also printable on plain white A4 size two-sided paper, and this without alteration to its print format and quality. Partially printed, dirty, damaged or unreadable E-Tickets can be considered as invalid and refused by the organiser. In case of bad print quality, you will need to print again your .pdf file. To verify the print quality, please make sure that every information on the E-Ticket and the barcode are legible. The distributor and the organiser disclaim all responsibility for anomalies that can occur while ordering, processing or printing the pass, since they did not do these actions; likewise they disclaim all responsibility in case of loss, theft or illicit use of the E-Ticket. During access control, you must have an official and valid ID with a photograph matching with the name written on the E-Ticket, when there is one: ID, passport, drivers' licence, or residence permit. Family record book can be accepted for children. Access can be denied if no valid ID is shown. This ID and the E-Ticket must be kept until the end of the event. In some cases, the organiser can give you a 2-stub ticket (showing or not commissions). That ticket also has to be kept until the end of the event. Unless instructed otherwise by the organiser, if you decide to leave the event, exit is definitive and your E-Ticket will not be valid anymore.`

	TermsCounterfeitHeading = "Counterfeit, illicit payment"
	TermsCounterfeitClause  = `It is forbidden to reproduce, use a copy, duplicate, counterfeit this E-Ticket in any way, subject to prosecution. As far as this goes, getting an E-Ticket with an illicit or stolen payment, or without the owner's agreement will lead to lawsuits and the invalidity of the E-Ticket. To be valid, this E-Ticket must not have been appealed against or unpaid on the credit card used for the order. In these cases this E-Ticket will be considered as invalid. Finally, it is forbidden to film, photograph or record the event without the consent of the organiser, or this will be considered as an author and/or organiser rights counterfeit.`

	TermsProgressHeading = "Event progress"
	TermsProgressClause  = `Events lie under the responsibility of the organiser himself. In case of cancellation or postponement of an event, the refund or exchange of this E-Ticket (freight charges, hotel, etc... being in any case excluded) will be submitted to the organiser's conditions.`
)
