package domain

// SepaPurpose is an ISO 20022 external purpose code (row 9)
// The empty value means no purpose is given.
type SepaPurpose string

const (
	PurposeNone SepaPurpose = ""

	PurposeACCT SepaPurpose = "ACCT" // account management
	PurposeADVA SepaPurpose = "ADVA" // advance payment
	PurposeAGRT SepaPurpose = "AGRT" // agricultural transfer
	PurposeAIRB SepaPurpose = "AIRB" // air transport
	PurposeALMY SepaPurpose = "ALMY" // alimony payment
	PurposeANNI SepaPurpose = "ANNI" // annuity
	PurposeANTS SepaPurpose = "ANTS" // anesthesia services
	PurposeAREN SepaPurpose = "AREN" // accounts receivable entry
	PurposeBECH SepaPurpose = "BECH" // child benefit
	PurposeBENE SepaPurpose = "BENE" // unemployment disability benefit
	PurposeBEXP SepaPurpose = "BEXP" // business expenses
	PurposeBOCE SepaPurpose = "BOCE" // back office conversion entry
	PurposeBONU SepaPurpose = "BONU" // bonus payment
	PurposeBUSB SepaPurpose = "BUSB" // bus transport
	PurposeCASH SepaPurpose = "CASH" // cash management transfer
	PurposeCBFF SepaPurpose = "CBFF" // capital building
	PurposeCBTV SepaPurpose = "CBTV" // cable TV bill
	PurposeCCRD SepaPurpose = "CCRD" // credit card payment
	PurposeCDBL SepaPurpose = "CDBL" // credit card bill
	PurposeCFEE SepaPurpose = "CFEE" // cancellation fee
	PurposeCHAR SepaPurpose = "CHAR" // charity payment
	PurposeCLPR SepaPurpose = "CLPR" // car loan principal repayment
	PurposeCMDT SepaPurpose = "CMDT" // commodity transfer
	PurposeCOLL SepaPurpose = "COLL" // collection payment
	PurposeCOMC SepaPurpose = "COMC" // commercial payment
	PurposeCOMM SepaPurpose = "COMM" // commission
	PurposeCOMT SepaPurpose = "COMT" // consumer third party consolidated payment
	PurposeCOST SepaPurpose = "COST" // costs
	PurposeCPYR SepaPurpose = "CPYR" // copyright
	PurposeCSDB SepaPurpose = "CSDB" // cash disbursement
	PurposeCSLP SepaPurpose = "CSLP" // company social loan payment to bank
	PurposeCVCF SepaPurpose = "CVCF" // convalescent care facility
	PurposeDBTC SepaPurpose = "DBTC" // debit collection payment
	PurposeDCRD SepaPurpose = "DCRD" // debit card payment
	PurposeDEPT SepaPurpose = "DEPT" // deposit
	PurposeDERI SepaPurpose = "DERI" // derivatives
	PurposeDIVD SepaPurpose = "DIVD" // dividend
	PurposeDMEQ SepaPurpose = "DMEQ" // durable medicale equipment
	PurposeDNTS SepaPurpose = "DNTS" // dental services
	PurposeELEC SepaPurpose = "ELEC" // electricity bill
	PurposeENRG SepaPurpose = "ENRG" // energies
	PurposeESTX SepaPurpose = "ESTX" // estate tax
	PurposeFERB SepaPurpose = "FERB" // ferry
	PurposeFREX SepaPurpose = "FREX" // foreign exchange
	PurposeGASB SepaPurpose = "GASB" // gas bill
	PurposeGDDS SepaPurpose = "GDDS" // purchase sale of goods
	PurposeGDSV SepaPurpose = "GDSV" // purchase sale of goods and services
	PurposeGOVI SepaPurpose = "GOVI" // government insurance
	PurposeGOVT SepaPurpose = "GOVT" // government payment
	PurposeHEDG SepaPurpose = "HEDG" // hedging
	PurposeHLRP SepaPurpose = "HLRP" // housing loan repayment
	PurposeHLTC SepaPurpose = "HLTC" // home health care
	PurposeHLTI SepaPurpose = "HLTI" // health insurance
	PurposeHSPC SepaPurpose = "HSPC" // hospital care
	PurposeHSTX SepaPurpose = "HSTX" // housing tax
	PurposeICCP SepaPurpose = "ICCP" // irrevocable credit card payment
	PurposeICRF SepaPurpose = "ICRF" // intermediate care facility
	PurposeIDCP SepaPurpose = "IDCP" // irrevocable debit card payment
	PurposeIHRP SepaPurpose = "IHRP" // instalment hire purchase agreement
	PurposeINPC SepaPurpose = "INPC" // insurance premium car
	PurposeINSM SepaPurpose = "INSM" // installment
	PurposeINSU SepaPurpose = "INSU" // insurance premium
	PurposeINTC SepaPurpose = "INTC" // intra company payment
	PurposeINTE SepaPurpose = "INTE" // interest
	PurposeINTX SepaPurpose = "INTX" // income tax
	PurposeLBRI SepaPurpose = "LBRI" // labor insurance
	PurposeLICF SepaPurpose = "LICF" // license fee
	PurposeLIFI SepaPurpose = "LIFI" // life insurance
	PurposeLIMA SepaPurpose = "LIMA" // liquidity management
	PurposeLOAN SepaPurpose = "LOAN" // loan
	PurposeLOAR SepaPurpose = "LOAR" // loan repayment
	PurposeLTCF SepaPurpose = "LTCF" // long term care facility
	PurposeMDCS SepaPurpose = "MDCS" // medical services
	PurposeMSVC SepaPurpose = "MSVC" // multiple service types
	PurposeNETT SepaPurpose = "NETT" // netting
	PurposeNITX SepaPurpose = "NITX" // net income tax
	PurposeNOWS SepaPurpose = "NOWS" // not otherwise specified
	PurposeNWCH SepaPurpose = "NWCH" // network charge
	PurposeNWCM SepaPurpose = "NWCM" // network communication
	PurposeOFEE SepaPurpose = "OFEE" // opening fee
	PurposeOTHR SepaPurpose = "OTHR" // other
	PurposeOTLC SepaPurpose = "OTLC" // other telecom related bill
	PurposePADD SepaPurpose = "PADD" // preauthorized debit
	PurposePAYR SepaPurpose = "PAYR" // payroll
	PurposePENS SepaPurpose = "PENS" // pension payment
	PurposePHON SepaPurpose = "PHON" // telephone bill
	PurposePOPE SepaPurpose = "POPE" // point of sale payment
	PurposePPTI SepaPurpose = "PPTI" // property insurance
	PurposePRCP SepaPurpose = "PRCP" // price payment
	PurposePRME SepaPurpose = "PRME" // precious metal
	PurposePTSP SepaPurpose = "PTSP" // payment terms
	PurposeRCKE SepaPurpose = "RCKE" // re-presented check entry
	PurposeRCPT SepaPurpose = "RCPT" // receipt payment
	PurposeREFU SepaPurpose = "REFU" // refund
	PurposeRENT SepaPurpose = "RENT" // rent
	PurposeRINP SepaPurpose = "RINP" // recurring installment payment
	PurposeRLWY SepaPurpose = "RLWY" // railway
	PurposeROYA SepaPurpose = "ROYA" // royalties
	PurposeSALA SepaPurpose = "SALA" // salary payment
	PurposeSAVG SepaPurpose = "SAVG" // savings
	PurposeSCVE SepaPurpose = "SCVE" // purchase sale of services
	PurposeSECU SepaPurpose = "SECU" // securities
	PurposeSSBE SepaPurpose = "SSBE" // social security benefit
	PurposeSTDY SepaPurpose = "STDY" // study
	PurposeSUBS SepaPurpose = "SUBS" // subscription
	PurposeSUPP SepaPurpose = "SUPP" // supplier payment
	PurposeTAXS SepaPurpose = "TAXS" // tax payment
	PurposeTELI SepaPurpose = "TELI" // telephone initiated transaction
	PurposeTRAD SepaPurpose = "TRAD" // trade services
	PurposeTREA SepaPurpose = "TREA" // treasury payment
	PurposeTRFD SepaPurpose = "TRFD" // trust fund
	PurposeVATX SepaPurpose = "VATX" // value added tax payment
	PurposeVIEW SepaPurpose = "VIEW" // vision care
	PurposeWEBI SepaPurpose = "WEBI" // internet initiated transaction
	PurposeWHLD SepaPurpose = "WHLD" // withholding
	PurposeWTER SepaPurpose = "WTER" // water bill
)

var knownPurposes = map[SepaPurpose]struct{}{
	PurposeACCT: {}, PurposeADVA: {}, PurposeAGRT: {}, PurposeAIRB: {}, PurposeALMY: {},
	PurposeANNI: {}, PurposeANTS: {}, PurposeAREN: {}, PurposeBECH: {}, PurposeBENE: {},
	PurposeBEXP: {}, PurposeBOCE: {}, PurposeBONU: {}, PurposeBUSB: {}, PurposeCASH: {},
	PurposeCBFF: {}, PurposeCBTV: {}, PurposeCCRD: {}, PurposeCDBL: {}, PurposeCFEE: {},
	PurposeCHAR: {}, PurposeCLPR: {}, PurposeCMDT: {}, PurposeCOLL: {}, PurposeCOMC: {},
	PurposeCOMM: {}, PurposeCOMT: {}, PurposeCOST: {}, PurposeCPYR: {}, PurposeCSDB: {},
	PurposeCSLP: {}, PurposeCVCF: {}, PurposeDBTC: {}, PurposeDCRD: {}, PurposeDEPT: {},
	PurposeDERI: {}, PurposeDIVD: {}, PurposeDMEQ: {}, PurposeDNTS: {}, PurposeELEC: {},
	PurposeENRG: {}, PurposeESTX: {}, PurposeFERB: {}, PurposeFREX: {}, PurposeGASB: {},
	PurposeGDDS: {}, PurposeGDSV: {}, PurposeGOVI: {}, PurposeGOVT: {}, PurposeHEDG: {},
	PurposeHLRP: {}, PurposeHLTC: {}, PurposeHLTI: {}, PurposeHSPC: {}, PurposeHSTX: {},
	PurposeICCP: {}, PurposeICRF: {}, PurposeIDCP: {}, PurposeIHRP: {}, PurposeINPC: {},
	PurposeINSM: {}, PurposeINSU: {}, PurposeINTC: {}, PurposeINTE: {}, PurposeINTX: {},
	PurposeLBRI: {}, PurposeLICF: {}, PurposeLIFI: {}, PurposeLIMA: {}, PurposeLOAN: {},
	PurposeLOAR: {}, PurposeLTCF: {}, PurposeMDCS: {}, PurposeMSVC: {}, PurposeNETT: {},
	PurposeNITX: {}, PurposeNOWS: {}, PurposeNWCH: {}, PurposeNWCM: {}, PurposeOFEE: {},
	PurposeOTHR: {}, PurposeOTLC: {}, PurposePADD: {}, PurposePAYR: {}, PurposePENS: {},
	PurposePHON: {}, PurposePOPE: {}, PurposePPTI: {}, PurposePRCP: {}, PurposePRME: {},
	PurposePTSP: {}, PurposeRCKE: {}, PurposeRCPT: {}, PurposeREFU: {}, PurposeRENT: {},
	PurposeRINP: {}, PurposeRLWY: {}, PurposeROYA: {}, PurposeSALA: {}, PurposeSAVG: {},
	PurposeSCVE: {}, PurposeSECU: {}, PurposeSSBE: {}, PurposeSTDY: {}, PurposeSUBS: {},
	PurposeSUPP: {}, PurposeTAXS: {}, PurposeTELI: {}, PurposeTRAD: {}, PurposeTREA: {},
	PurposeTRFD: {}, PurposeVATX: {}, PurposeVIEW: {}, PurposeWEBI: {}, PurposeWHLD: {},
	PurposeWTER: {},
}

// IsKnown reports whether p is part of the closed purpose code set
// PurposeNone is considered known.
func (p SepaPurpose) IsKnown() bool {
	if p == PurposeNone {
		return true
	}
	_, ok := knownPurposes[p]
	return ok
}
