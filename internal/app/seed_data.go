package app

import (
	"fmt"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

func seedPatients() []domain.Patient {
	p := func(id, name string, age int, gender, admitted, condition, room, urgency, history string) domain.Patient {
		return domain.Patient{
			ID: id, Name: name, Age: age, Gender: gender, AdmissionDate: admitted,
			Condition: condition, RoomNumber: ptr(room), Urgency: urgency, History: ptr(history),
		}
	}
	return []domain.Patient{
		p("P-101", "Sarah Johnson", 34, "Female", "2023-10-24", "Migraine", "304-A", domain.UrgencyMedium, "Chronic migraines since 2018."),
		p("P-102", "Michael Chen", 58, "Male", "2023-10-22", "Cardiac Arrest", "ICU-02", domain.UrgencyCritical, "Hypertension, High Cholesterol."),
		p("P-103", "Emily Davis", 24, "Female", "2023-10-25", "Fractured Tibia", "201-B", domain.UrgencyLow, "No major history."),
		p("P-104", "James Wilson", 45, "Male", "2023-10-23", "Pneumonia", "305-C", domain.UrgencyHigh, "Smoker for 20 years."),
		p("P-105", "Anita Patel", 62, "Female", "2023-10-21", "Diabetes T2", "104-A", domain.UrgencyMedium, "Insulin dependent."),
	}
}

func seedAppointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: "APT-000001", PatientName: "Sarah Johnson", DoctorName: "Dr. Chen", Time: "09:00 AM", Date: "Today", Type: "General Checkup", Status: "Confirmed"},
		{ID: "APT-000002", PatientName: "Mike Ross", DoctorName: "Dr. Smith", Time: "10:30 AM", Date: "Today", Type: "Tele-Consult", Status: "Pending", IsOnline: true},
		{ID: "APT-000003", PatientName: "Emma Watson", DoctorName: "Dr. Chen", Time: "02:00 PM", Date: "Today", Type: "Follow-up", Status: "Confirmed"},
		{ID: "APT-000004", PatientName: "John Doe", DoctorName: "Dr. House", Time: "04:15 PM", Date: "Tomorrow", Type: "Neurology", Status: domain.AppointmentCancelled},
	}
}

func seedInvoices() []domain.Invoice {
	return []domain.Invoice{
		{ID: "INV-001", PatientName: "Sarah Johnson", Date: "2023-10-25", Amount: 450, Status: domain.InvoicePaid, Items: []string{"Consultation", "Blood Test"}},
		{ID: "INV-002", PatientName: "Michael Chen", Date: "2023-10-24", Amount: 1250, Status: domain.InvoicePending, Items: []string{"MRI Scan", "Consultation"}},
		{ID: "INV-003", PatientName: "Emily Davis", Date: "2023-10-20", Amount: 120, Status: "Overdue", Items: []string{"Follow-up"}},
	}
}

func seedInventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "MED-001", Name: "Paracetamol", Category: "Medicine", Stock: 500, Unit: "Tablets", LastUpdated: ptr("2023-10-25"), Status: "In Stock"},
		{ID: "MED-002", Name: "Insulin", Category: "Medicine", Stock: 20, Unit: "Vials", LastUpdated: ptr("2023-10-24"), Status: "Low Stock"},
		{ID: "SUP-001", Name: "Surgical Masks", Category: "Supply", Stock: 1000, Unit: "Pieces", LastUpdated: ptr("2023-10-20"), Status: "In Stock"},
		{ID: "SUP-002", Name: "Gloves (L)", Category: "Supply", Stock: 0, Unit: "Boxes", LastUpdated: ptr("2023-10-22"), Status: "Out of Stock"},
	}
}

func seedAmbulances() []domain.Ambulance {
	return []domain.Ambulance{
		{ID: "AMB-000001", VehicleNumber: "AMB-101", DriverName: "John Doe", Status: "Available", Location: ptr("Hospital Base"), Type: "ALS"},
		{ID: "AMB-000002", VehicleNumber: "AMB-102", DriverName: "Mike Smith", Status: "On Route", Location: ptr("Downtown"), Type: "BLS"},
		{ID: "AMB-000003", VehicleNumber: "AMB-103", DriverName: "Sarah Connor", Status: "Maintenance", Location: ptr("Workshop"), Type: "ALS"},
		{ID: "AMB-000004", VehicleNumber: "AMB-104", DriverName: "David Lee", Status: "Available", Location: ptr("Station 2"), Type: "BLS"},
	}
}

func seedStaff() []domain.StaffMember {
	s := func(n int, name, specialty, status string, patients int) domain.StaffMember {
		return domain.StaffMember{
			ID: fmt.Sprint(n), Name: name, Specialty: specialty, Status: status, Patients: patients,
			Image: ptr(fmt.Sprintf("https://picsum.photos/seed/doc%d/200", n)),
		}
	}
	return []domain.StaffMember{
		s(1, "Dr. Sarah Chen", "Cardiology", "Online", 12),
		s(2, "Dr. Michael Ross", "Neurology", "In Surgery", 8),
		s(3, "Dr. James Wilson", "Oncology", "Offline", 0),
		s(4, "Dr. Emily House", "General Surgery", "On Break", 5),
		s(5, "Dr. Lisa Cuddy", "Administration", "Online", 2),
		s(6, "Dr. Eric Foreman", "Neurology", "Online", 15),
	}
}

func seedTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Title: "Review MRI Results for Bed 3", Assignee: "Dr. Chen", Priority: "High", Status: "Todo"},
		{ID: "2", Title: "Restock Insulin", Assignee: "Pharmacy", Priority: "Medium", Status: "Todo"},
		{ID: "3", Title: "Prepare Discharge Summary P-101", Assignee: "Nurse Joy", Priority: "Low", Status: "In Progress"},
		{ID: "4", Title: "Sanitize OT-2", Assignee: "Staff A", Priority: "High", Status: "Done"},
	}
}

// seedBeds lays out four ICU beds and eight general ward beds.
func seedBeds() []domain.Bed {
	occupants := map[int]string{1: "John Doe", 5: "Jane Smith", 8: "Bob Jones"}
	beds := make([]domain.Bed, 0, 12)
	for i := 0; i < 12; i++ {
		b := domain.Bed{ID: fmt.Sprintf("B-%d", i+1), Ward: "General Ward A", Number: fmt.Sprintf("G-%d", i+1), Type: "General", Status: "Available"}
		if i < 4 {
			b.Ward, b.Number, b.Type = "ICU", fmt.Sprintf("ICU-%d", i+1), "ICU"
		}
		if name, ok := occupants[i]; ok {
			b.Status, b.PatientName = "Occupied", ptr(name)
		} else if i == 2 {
			b.Status = "Cleaning"
		}
		beds = append(beds, b)
	}
	return beds
}

func seedNotices() []domain.Notice {
	return []domain.Notice{
		{ID: "1", Title: "System Maintenance", Content: "The server will be down for maintenance on Sunday 2 AM to 4 AM.", Date: "Oct 26", Priority: "Urgent"},
		{ID: "2", Title: "New COVID Protocols", Content: "Please review the updated safety guidelines for the ICU.", Date: "Oct 25", Priority: "Normal"},
		{ID: "3", Title: "Staff Meeting", Content: "General staff meeting on Friday at 3 PM in the Conference Hall.", Date: "Oct 24", Priority: "Normal"},
	}
}

func seedLabRequests() []domain.LabRequest {
	return []domain.LabRequest{
		{ID: "LAB-001", PatientName: "Sarah Johnson", TestName: "Complete Blood Count (CBC)", Priority: "Routine", Status: "Completed", Date: "2023-10-26"},
		{ID: "LAB-002", PatientName: "Michael Chen", TestName: "Liver Function Test", Priority: "Urgent", Status: "Processing", Date: "2023-10-26"},
		{ID: "LAB-003", PatientName: "John Doe", TestName: "Lipid Profile", Priority: "Routine", Status: "Sample Collected", Date: "2023-10-25"},
	}
}

func seedRadiology() []domain.RadiologyRequest {
	return []domain.RadiologyRequest{
		{ID: "RAD-001", PatientName: "Anita Patel", Modality: "MRI", BodyPart: "Brain", Status: "Report Ready", Date: "2023-10-26"},
		{ID: "RAD-002", PatientName: "Emily Davis", Modality: "X-Ray", BodyPart: "Left Tibia", Status: "Imaging", Date: "2023-10-26"},
		{ID: "RAD-003", PatientName: "James Wilson", Modality: "CT Scan", BodyPart: "Chest", Status: "Scheduled", Date: "2023-10-27"},
	}
}

func seedReferrals() []domain.Referral {
	return []domain.Referral{
		{ID: "REF-001", PatientName: "Jane Doe", Direction: "Outbound", Hospital: "City General", Reason: "Advanced Neurology", Status: "Accepted", Date: "2023-10-26"},
		{ID: "REF-002", PatientName: "Mark Smith", Direction: "Inbound", Hospital: "Rural Clinic A", Reason: "ICU Requirement", Status: "Pending", Date: "2023-10-25"},
	}
}

func seedCertificates() []domain.Certificate {
	return []domain.Certificate{
		{ID: "MC-101", PatientName: "Sarah Johnson", Type: "Sick Leave", IssueDate: "2023-10-26", Doctor: "Dr. Chen", Status: "Issued"},
		{ID: "MC-102", PatientName: "Michael Chen", Type: "Fitness", IssueDate: "2023-10-25", Doctor: "Dr. Ross", Status: "Draft"},
	}
}

func seedTrials() []domain.ResearchTrial {
	return []domain.ResearchTrial{
		{ID: "1", Title: "Cardio-X Drug Trial", Phase: "Phase III", Participants: 120, Status: "Active", LeadResearcher: "Dr. S. Chen"},
		{ID: "2", Title: "Diabetes Management Study", Phase: "Phase I", Participants: 15, Status: "Recruiting", LeadResearcher: "Dr. J. Doe"},
	}
}

func seedMaternity() []domain.MaternityRecord {
	return []domain.MaternityRecord{
		{ID: "1", Name: "Maria Garcia", WeeksPregnant: 39, Doctor: "Dr. Cuddy", Status: "Labor", Room: ptr("LDR-01")},
		{ID: "2", Name: "Sarah Lee", WeeksPregnant: 34, Doctor: "Dr. Cuddy", Status: "Ante-natal", Room: ptr("302")},
	}
}

func seedQueue() []domain.QueueItem {
	return []domain.QueueItem{
		{ID: "Q-000001", TokenNumber: 101, PatientName: "John Doe", DoctorName: "Dr. Sarah Chen", Department: "Cardiology", Status: "In Consultation", WaitTime: ptr("0m")},
		{ID: "Q-000002", TokenNumber: 102, PatientName: "Alice Smith", DoctorName: "Dr. Sarah Chen", Department: "Cardiology", Status: "Waiting", WaitTime: ptr("15m")},
		{ID: "Q-000003", TokenNumber: 103, PatientName: "Bob Brown", DoctorName: "Dr. Sarah Chen", Department: "Cardiology", Status: "Waiting", WaitTime: ptr("30m")},
	}
}

func seedBloodUnits() []domain.BloodUnit {
	return []domain.BloodUnit{
		{ID: "BU-001", Group: "A+", Bags: 12, Status: "Adequate"},
		{ID: "BU-002", Group: "A-", Bags: 3, Status: "Low"},
		{ID: "BU-003", Group: "B+", Bags: 15, Status: "Adequate"},
		{ID: "BU-004", Group: "B-", Bags: 2, Status: "Critical"},
		{ID: "BU-005", Group: "O+", Bags: 20, Status: "Adequate"},
		{ID: "BU-006", Group: "O-", Bags: 4, Status: "Low"},
		{ID: "BU-007", Group: "AB+", Bags: 8, Status: "Adequate"},
		{ID: "BU-008", Group: "AB-", Bags: 1, Status: "Critical"},
	}
}

func seedBloodBags() []domain.BloodBag {
	b := func(id, group, donorID, donor, collected, expires, status, location string) domain.BloodBag {
		return domain.BloodBag{
			ID: id, BloodGroup: group, DonorID: ptr(donorID), DonorName: ptr(donor),
			CollectionDate: collected, ExpiryDate: expires, Volume: 450, Status: status, Location: ptr(location),
		}
	}
	return []domain.BloodBag{
		b("BB-001", "A+", "D-001", "John Smith", "2024-01-15", "2024-02-15", "Available", "Freezer A-1"),
		b("BB-002", "A+", "D-002", "Mary Johnson", "2024-01-16", "2024-02-16", "Available", "Freezer A-1"),
		b("BB-003", "B+", "D-003", "Robert Brown", "2024-01-14", "2024-02-14", "Reserved", "Freezer B-1"),
		b("BB-004", "O-", "D-004", "Sarah Wilson", "2024-01-17", "2024-02-17", "Available", "Freezer O-1"),
		b("BB-005", "O+", "D-005", "Michael Davis", "2024-01-10", "2024-02-10", "Available", "Freezer O-1"),
		b("BB-006", "AB+", "D-006", "Emily Chen", "2024-01-18", "2024-02-18", "Available", "Freezer AB-1"),
	}
}

func seedBloodDonors() []domain.BloodDonor {
	d := func(id, name string, age int, gender, group, contact, email, address, last string, total int, created string) domain.BloodDonor {
		return domain.BloodDonor{
			ID: id, Name: name, Age: age, Gender: gender, BloodGroup: group,
			Contact: ptr(contact), Email: ptr(email), Address: ptr(address),
			LastDonationDate: ptr(last), TotalDonations: total, Status: "Active", CreatedAt: ptr(created),
		}
	}
	deferred := d("D-007", "David Lee", 50, "Male", "B-", "555-0107", "dlee@email.com", "147 Maple Way, Village", "2023-12-01", 15, "2020-05-18")
	deferred.Status = "Deferred"
	deferred.MedicalConditions = ptr("High blood pressure")

	return []domain.BloodDonor{
		d("D-001", "John Smith", 32, "Male", "A+", "555-0101", "john.smith@email.com", "123 Main St, City", "2024-01-15", 5, "2023-06-15"),
		d("D-002", "Mary Johnson", 28, "Female", "A+", "555-0102", "mary.j@email.com", "456 Oak Ave, Town", "2024-01-16", 3, "2023-08-20"),
		d("D-003", "Robert Brown", 45, "Male", "B+", "555-0103", "rbrown@email.com", "789 Pine Rd, Village", "2024-01-14", 8, "2022-01-10"),
		d("D-004", "Sarah Wilson", 35, "Female", "O-", "555-0104", "swilson@email.com", "321 Elm St, City", "2024-01-17", 12, "2021-03-22"),
		d("D-005", "Michael Davis", 40, "Male", "O+", "555-0105", "mdavis@email.com", "654 Cedar Ln, Town", "2024-01-10", 6, "2022-11-05"),
		d("D-006", "Emily Chen", 26, "Female", "AB+", "555-0106", "echen@email.com", "987 Birch Dr, City", "2024-01-18", 2, "2023-09-12"),
		deferred,
	}
}

func seedBloodRequests() []domain.BloodRequest {
	return []domain.BloodRequest{
		{
			ID: "BR-001", PatientID: ptr("P-102"), PatientName: "Michael Chen", BloodGroup: "B-", UnitsRequired: 2,
			Urgency: "Emergency", Department: ptr("ICU"), Doctor: ptr("Dr. Sarah Chen"), Status: "Pending",
			RequestDate: "2024-01-20", RequiredDate: ptr("2024-01-20"), CrossMatchStatus: ptr("Pending"),
			Notes: ptr("Cardiac surgery scheduled"),
		},
		{
			ID: "BR-002", PatientID: ptr("P-108"), PatientName: "Lisa Anderson", BloodGroup: "A+", UnitsRequired: 1,
			Urgency: "Routine", Department: ptr("Surgery"), Doctor: ptr("Dr. Michael Ross"), Status: "Approved",
			RequestDate: "2024-01-19", RequiredDate: ptr("2024-01-22"), CrossMatchStatus: ptr("Compatible"),
		},
		{
			ID: "BR-003", PatientID: ptr("P-109"), PatientName: "James Taylor", BloodGroup: "O-", UnitsRequired: 3,
			Urgency: "Urgent", Department: ptr("Emergency"), Doctor: ptr("Dr. Emily House"), Status: "Fulfilled",
			RequestDate: "2024-01-18", RequiredDate: ptr("2024-01-18"), CrossMatchStatus: ptr("Compatible"),
			FulfilledDate: ptr("2024-01-18"), FulfilledUnits: ptr(3),
		},
	}
}
